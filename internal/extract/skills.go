package extract

import "github.com/jonathan/job-matcher/internal/catalog"

// skillCatalog is the fixed table of technology terms recognized on résumés.
// Iteration order is the output order of extracted skills. The matcher keeps
// its own, smaller keyword table; the two are configured independently.
var skillCatalog = catalog.New([]catalog.Term{
	{Display: "JavaScript", Pattern: `JavaScript`},
	{Display: "TypeScript", Pattern: `TypeScript`},
	{Display: "Python", Pattern: `Python`},
	{Display: "Java", Pattern: `Java`},
	{Display: "C++", Pattern: `C\+\+`},
	{Display: "C#", Pattern: `C#`},
	{Display: "Ruby", Pattern: `Ruby`},
	{Display: "Go", Pattern: `Go`},
	{Display: "Rust", Pattern: `Rust`},
	{Display: "PHP", Pattern: `PHP`},
	{Display: "React", Pattern: `React`},
	{Display: "Angular", Pattern: `Angular`},
	{Display: "Vue", Pattern: `Vue`},
	{Display: "Next.js", Pattern: `Next\.js`},
	{Display: "Svelte", Pattern: `Svelte`},
	{Display: "Node.js", Pattern: `Node\.js`},
	{Display: "Express", Pattern: `Express`},
	{Display: "Django", Pattern: `Django`},
	{Display: "Flask", Pattern: `Flask`},
	{Display: "FastAPI", Pattern: `FastAPI`},
	{Display: "SQL", Pattern: `SQL`},
	{Display: "MongoDB", Pattern: `MongoDB`},
	{Display: "PostgreSQL", Pattern: `PostgreSQL`},
	{Display: "MySQL", Pattern: `MySQL`},
	{Display: "Redis", Pattern: `Redis`},
	{Display: "GraphQL", Pattern: `GraphQL`},
	{Display: "Prisma", Pattern: `Prisma`},
	{Display: "AWS", Pattern: `AWS`},
	{Display: "Azure", Pattern: `Azure`},
	{Display: "GCP", Pattern: `GCP`},
	{Display: "Docker", Pattern: `Docker`},
	{Display: "Kubernetes", Pattern: `Kubernetes`},
	{Display: "CI/CD", Pattern: `CI/CD`},
	{Display: "Jenkins", Pattern: `Jenkins`},
	{Display: "GitHub Actions", Pattern: `GitHub Actions`},
	{Display: "HTML", Pattern: `HTML`},
	{Display: "CSS", Pattern: `CSS`},
	{Display: "Tailwind", Pattern: `Tailwind`},
	{Display: "Bootstrap", Pattern: `Bootstrap`},
	{Display: "SASS", Pattern: `SASS`},
	{Display: "Git", Pattern: `Git`},
	{Display: "GitHub", Pattern: `GitHub`},
	{Display: "GitLab", Pattern: `GitLab`},
	{Display: "Machine Learning", Pattern: `Machine Learning`},
	{Display: "AI", Pattern: `AI`},
	{Display: "Data Science", Pattern: `Data Science`},
	{Display: "TensorFlow", Pattern: `TensorFlow`},
	{Display: "PyTorch", Pattern: `PyTorch`},
	{Display: "Pandas", Pattern: `Pandas`},
	{Display: "NumPy", Pattern: `NumPy`},
	{Display: "REST API", Pattern: `REST API`},
	{Display: "Microservices", Pattern: `Microservices`},
	{Display: "Agile", Pattern: `Agile`},
	{Display: "Scrum", Pattern: `Scrum`},
	{Display: "Testing", Pattern: `Testing`},
	{Display: "Jest", Pattern: `Jest`},
	{Display: "Cypress", Pattern: `Cypress`},
})

package match

import "github.com/jonathan/job-matcher/internal/catalog"

// keywordCatalog is the table of technology keywords looked for in job
// postings. It overlaps the résumé skill catalogue but is configured
// independently: job ads use a coarser vocabulary than résumés.
var keywordCatalog = catalog.New([]catalog.Term{
	{Display: "JavaScript", Pattern: `JavaScript`},
	{Display: "TypeScript", Pattern: `TypeScript`},
	{Display: "Python", Pattern: `Python`},
	{Display: "Java", Pattern: `Java`},
	{Display: "React", Pattern: `React`},
	{Display: "Node.js", Pattern: `Node\.js`},
	{Display: "Angular", Pattern: `Angular`},
	{Display: "Vue", Pattern: `Vue`},
	{Display: "Express", Pattern: `Express`},
	{Display: "Django", Pattern: `Django`},
	{Display: "Flask", Pattern: `Flask`},
	{Display: "PostgreSQL", Pattern: `PostgreSQL`},
	{Display: "MongoDB", Pattern: `MongoDB`},
	{Display: "MySQL", Pattern: `MySQL`},
	{Display: "Redis", Pattern: `Redis`},
	{Display: "Docker", Pattern: `Docker`},
	{Display: "Kubernetes", Pattern: `Kubernetes`},
	{Display: "AWS", Pattern: `AWS`},
	{Display: "Azure", Pattern: `Azure`},
	{Display: "GCP", Pattern: `GCP`},
	{Display: "Git", Pattern: `Git`},
	{Display: "CI/CD", Pattern: `CI/CD`},
	{Display: "REST API", Pattern: `REST API`},
	{Display: "GraphQL", Pattern: `GraphQL`},
	{Display: "TensorFlow", Pattern: `TensorFlow`},
	{Display: "PyTorch", Pattern: `PyTorch`},
	{Display: "Machine Learning", Pattern: `Machine Learning`},
	{Display: "AI", Pattern: `AI`},
	{Display: "Agile", Pattern: `Agile`},
	{Display: "Scrum", Pattern: `Scrum`},
	{Display: "Microservices", Pattern: `Microservices`},
	{Display: "HTML", Pattern: `HTML`},
	{Display: "CSS", Pattern: `CSS`},
	{Display: "Tailwind", Pattern: `Tailwind`},
	{Display: "Bootstrap", Pattern: `Bootstrap`},
})

// Package content holds the portfolio's static sections. The data lives in
// code rather than a datastore: it changes with the site itself, so edits go
// through review and deploy like any other change.
package content

import "portfolio-backend/model"

var profile = model.Profile{
	Name:      "Bhanu Nama",
	Headline:  "Aspiring Software Developer",
	Email:     "bhanunama08@gmail.com",
	Phone:     "+91 7993073400",
	Location:  "Hyderabad, India",
	GitHub:    "https://github.com/bhanunama",
	LinkedIn:  "https://www.linkedin.com/in/bhanunama",
	SiteURL:   "https://bhanunama.dev",
	Objective: "Aspiring Software Developer and CSE graduate skilled in MERN stack, Python and Database Systems.",
}

var projects = []model.Project{
	{
		ID:       "freeladesk",
		Title:    "FreelaDesk",
		Category: "SaaS for Freelancers",
		Date:     "2024 - Present",
		Description: []string{
			"Built an AI-powered SaaS platform streamlining freelance project planning, client communication, and financial oversight.",
			"Leveraged structured LLM outputs to automate project decomposition and task generation from real-world documents.",
			"Designed secure, real-time client visibility dashboards to improve trust and reduce operational overhead.",
			"Delivered a unified productivity and financial management workspace for modern freelancers.",
		},
		Tools: []string{"Structured LLM", "React", "Node.js", "PostgreSQL"},
		Link:  "#",
		Color: "from-amber-500 to-orange-600",
		Image: "/images/freeladesk.png",
	},
	{
		ID:       "nutriguide",
		Title:    "Nutri Guide AI",
		Category: "MERN Stack Development",
		Date:     "Nov 2024 - Jan 2025",
		Description: []string{
			"Engineered a full-stack AI web app generating personalized meal plans using Gemini API.",
			"Implemented dynamic meal scheduling with macro breakdowns and visual analytics via Chart.js.",
			"Developed JWT-based authentication and user profile management.",
		},
		Tools:      []string{"ReactJS", "MongoDB", "NodeJS", "Gemini API", "Chart.js"},
		Link:       "#",
		GithubLink: "https://github.com/bhanunama",
		LiveLink:   "http://neutri-guide.vercel.app/",
		Color:      "from-emerald-500 to-teal-600",
		Image:      "/images/nutriguide.png",
	},
	{
		ID:       "campusconnect",
		Title:    "Campus Connect",
		Category: "MERN Stack Development",
		Date:     "Jan 2024 - June 2024",
		Description: []string{
			"Developed a MERN application to enhance campus communication and management.",
			"Implemented role-based access control using JWT.",
			"Created real-time attendance tracking and exam results management systems.",
		},
		Tools:      []string{"ReactJS", "MongoDB", "NodeJS", "ExpressJS"},
		Link:       "#",
		GithubLink: "https://github.com/bhanunama",
		LiveLink:   "https://campus-connect-new.vercel.app/",
		Color:      "from-blue-500 to-cyan-600",
		Image:      "/images/campusconnect.png",
	},
}

var education = []model.Education{
	{
		Institution: "Keshav Memorial Institute of Technology",
		Degree:      "B.Tech in Computer Science and Engineering",
		Duration:    "Dec 2021 - June 2025",
		Location:    "Hyderabad, India",
		Details:     "CGPA: 8.3",
	},
	{
		Institution: "Sri Gayatri College",
		Degree:      "Intermediate (MPC)",
		Duration:    "2019 - 2021",
		Location:    "Hyderabad, India",
		Details:     "Percentage: 97%",
	},
}

var skills = []model.Skill{
	{Name: "React", Category: "Web", Icon: "react"},
	{Name: "Node.js", Category: "Web", Icon: "nodejs"},
	{Name: "Express.js", Category: "Web", Icon: "expressjs"},
	{Name: "TailwindCSS", Category: "Web", Icon: "tailwindcss"},
	{Name: "MongoDB", Category: "DB", Icon: "mongodb"},
	{Name: "HTML", Category: "Language", Icon: "html"},
	{Name: "JavaScript", Category: "Language", Icon: "js"},
	{Name: "Java", Category: "Language", Icon: "java"},
	{Name: "Git", Category: "Other", Icon: "git"},
	{Name: "Operating Systems", Category: "Other", Icon: "linux"},
	{Name: "DSA", Category: "Other", Icon: "brain"},
	{Name: "MySQL", Category: "DB", Icon: "mysql"},
	{Name: "AWS", Category: "DB", Icon: "aws"},
}

var certifications = []model.Certification{
	{Provider: "Microsoft & LinkedIn", Name: "Essentials in Software Development"},
	{Provider: "Udemy", Name: "Java & C++"},
}

// Accessors return copies so callers cannot mutate the shared tables.

func GetProfile() model.Profile {
	return profile
}

func Projects() []model.Project {
	out := make([]model.Project, len(projects))
	copy(out, projects)
	return out
}

func EducationEntries() []model.Education {
	out := make([]model.Education, len(education))
	copy(out, education)
	return out
}

func Skills() []model.Skill {
	out := make([]model.Skill, len(skills))
	copy(out, skills)
	return out
}

func Certifications() []model.Certification {
	out := make([]model.Certification, len(certifications))
	copy(out, certifications)
	return out
}

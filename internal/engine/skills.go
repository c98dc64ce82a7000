package engine

import "strings"

// technicalSkills is the fixed vocabulary scanned for in questions when
// matching participants or recommending sessions.
var technicalSkills = []string{
	"Python", "JavaScript", "Java", "C++", "C#", "Ruby", "Go", "PHP",
	"Swift", "Kotlin", "R", "MATLAB", "SQL", "NoSQL", "MongoDB",
	"PostgreSQL", "MySQL", "Oracle", "React", "Angular", "Vue",
	"Node.js", "Express", "Django", "Flask", "Spring", "ASP.NET",
	"TensorFlow", "PyTorch", "Keras", "scikit-learn", "Pandas",
	"NumPy", "SciPy", "Machine Learning", "Deep Learning", "NLP",
	"Computer Vision", "Reinforcement Learning", "AI", "Data Science",
	"Big Data", "Hadoop", "Spark", "AWS", "Azure", "GCP", "Docker",
	"Kubernetes", "Jenkins", "Git", "CI/CD", "DevOps", "Blockchain",
	"Cybersecurity", "UI/UX", "Mobile Development", "Web Development",
	"RAG", "Chatbot", "LLM", "BERT", "GPT", "Transformers", "API",
}

// broadAreas is the fallback category vocabulary used when no specific
// skill is mentioned.
var broadAreas = []string{
	"AI", "Machine Learning", "Data Science", "Web Development",
	"Mobile Development", "DevOps", "Cloud", "Database",
	"Frontend", "Backend", "Full Stack", "Security", "UI/UX",
}

// sessionDomains are domain keywords that become a session tag when they
// appear in the session title.
var sessionDomains = []string{"healthcare", "finance", "education", "retail", "manufacturing"}

// ExtractSkills returns the technical skills mentioned in a question,
// falling back to broader area terms when no specific skill is named.
func ExtractSkills(question string) []string {
	q := strings.ToLower(question)

	var mentioned []string
	for _, skill := range technicalSkills {
		if strings.Contains(q, strings.ToLower(skill)) {
			mentioned = append(mentioned, skill)
		}
	}

	if len(mentioned) == 0 {
		for _, area := range broadAreas {
			if strings.Contains(q, strings.ToLower(area)) {
				mentioned = append(mentioned, area)
			}
		}
	}

	return mentioned
}

// sessionTags derives the keyword tag set for an agenda session from fixed
// substring rules on its title.
func sessionTags(session string) []string {
	s := strings.ToLower(session)

	var tags []string
	switch {
	case strings.Contains(s, "rag") || strings.Contains(s, "event bot"):
		tags = append(tags, "RAG", "Chatbot", "NLP", "AI", "ML", "Python", "LLM")
	case strings.Contains(s, "claude") || strings.Contains(s, "payment"):
		tags = append(tags, "Automation", "Payments", "Claude", "LLM", "API")
	case strings.Contains(s, "multi ai") || strings.Contains(s, "agent"):
		tags = append(tags, "Agents", "Multi-agent", "AI", "ML", "LLM")
	case strings.Contains(s, "google"):
		tags = append(tags, "Google", "Cloud", "ML", "AI")
	case strings.Contains(s, "industry") || strings.Contains(s, "connect"):
		tags = append(tags, "Industry", "Business")
	}

	for _, domain := range sessionDomains {
		if strings.Contains(s, domain) {
			tags = append(tags, strings.ToUpper(domain[:1])+domain[1:])
		}
	}

	return tags
}

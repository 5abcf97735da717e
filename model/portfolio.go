package model

// Profile holds the owner's public contact card.
type Profile struct {
	Name      string `json:"name"`
	Headline  string `json:"headline"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	SiteURL   string `json:"siteURL"`
	Objective string `json:"objective"`
}

// Project is one portfolio project card.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
	Description []string `json:"description"`
	Tools       []string `json:"tools"`
	Link        string   `json:"link"`
	GithubLink  string   `json:"githubLink,omitempty"`
	LiveLink    string   `json:"liveLink,omitempty"`
	Color       string   `json:"color"`
	Image       string   `json:"image,omitempty"`
}

// Education is one education timeline entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Duration    string `json:"duration"`
	Location    string `json:"location"`
	Details     string `json:"details"`
}

// Skill categories: Language, Web, DB, Other.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

type Certification struct {
	Provider string `json:"provider"`
	Name     string `json:"name"`
}

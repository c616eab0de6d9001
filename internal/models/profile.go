package models

type Contact struct {
	Email   string `toml:"email"`
	Phone   string `toml:"phone"`
	Website string `toml:"website"`
}

type Team struct {
	Size        string   `toml:"size"`
	Locations   []string `toml:"locations"`
	Specialties []string `toml:"specialties"`
}

// OrganizationProfile holds the facts the responder answers from.
type OrganizationProfile struct {
	Name     string   `toml:"name"`
	Industry string   `toml:"industry"`
	Founded  string   `toml:"founded"`
	Mission  string   `toml:"mission"`
	Products []string `toml:"products"`
	Services []string `toml:"services"`
	Values   []string `toml:"values"`
	Contact  Contact  `toml:"contact"`
	Team     *Team    `toml:"team,omitempty"`
}

type RuleSource string

const (
	RuleSourceBuiltin RuleSource = "builtin"
	RuleSourceCustom  RuleSource = "custom"
)

// QuestionRule maps a trigger phrase to a canned answer.
type QuestionRule struct {
	ID      string
	Source  RuleSource
	Trigger string
	Answer  string
}

// CustomQA is a configured question/answer pair before normalization.
type CustomQA struct {
	Question string `toml:"question"`
	Answer   string `toml:"answer"`
}

// CompanyConfig is the on-disk shape of the company profile file.
type CompanyConfig struct {
	Company  OrganizationProfile `toml:"company"`
	CustomQA []CustomQA          `toml:"custom_qa"`
}

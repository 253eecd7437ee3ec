package site

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Card is a titled blurb used by feature grids, values, process steps and so on.
type Card struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Testimonial struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Quote string `yaml:"quote"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Offering is a service. Offerings with a slug get their own page under /service.
type Offering struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Details     string `yaml:"details"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Stack       []string `yaml:"stack"`
}

type HomeCopy struct {
	Headline          string        `yaml:"headline"`
	Lead              string        `yaml:"lead"`
	CTALabel          string        `yaml:"cta_label"`
	FeaturesTitle     string        `yaml:"features_title"`
	Features          []Card        `yaml:"features"`
	TestimonialsTitle string        `yaml:"testimonials_title"`
	Testimonials      []Testimonial `yaml:"testimonials"`
	ClosingTitle      string        `yaml:"closing_title"`
	ClosingLabel      string        `yaml:"closing_label"`
}

type AboutCopy struct {
	Title             string `yaml:"title"`
	Intro             string `yaml:"intro"`
	Statements        []Card `yaml:"statements"`
	TechnologiesTitle string `yaml:"technologies_title"`
	Technologies      []Card `yaml:"technologies"`
	ValuesTitle       string `yaml:"values_title"`
	Values            []Card `yaml:"values"`
	ProcessTitle      string `yaml:"process_title"`
	Process           []Card `yaml:"process"`
	ClosingTitle      string `yaml:"closing_title"`
	ClosingText       string `yaml:"closing_text"`
	ClosingLabel      string `yaml:"closing_label"`
}

type ServicesCopy struct {
	Title             string        `yaml:"title"`
	Offerings         []Offering    `yaml:"offerings"`
	TailoredTitle     string        `yaml:"tailored_title"`
	TailoredText      string        `yaml:"tailored_text"`
	WhyTitle          string        `yaml:"why_title"`
	Why               []string      `yaml:"why"`
	StackTitle        string        `yaml:"stack_title"`
	Stack             []string      `yaml:"stack"`
	TestimonialsTitle string        `yaml:"testimonials_title"`
	Testimonials      []Testimonial `yaml:"testimonials"`
	ClosingTitle      string        `yaml:"closing_title"`
	ClosingLabel      string        `yaml:"closing_label"`
}

// Offering finds the service page for slug.
func (s ServicesCopy) Offering(slug string) (Offering, bool) {
	if slug == "" {
		return Offering{}, false
	}
	for _, o := range s.Offerings {
		if o.Slug == slug {
			return o, true
		}
	}
	return Offering{}, false
}

type ProjectsCopy struct {
	Title string    `yaml:"title"`
	Lead  string    `yaml:"lead"`
	Items []Project `yaml:"items"`
}

type ContactCopy struct {
	Title     string `yaml:"title"`
	Lead      string `yaml:"lead"`
	Address   string `yaml:"address"`
	Phone     string `yaml:"phone"`
	PhoneHref string `yaml:"phone_href"`
	Email     string `yaml:"email"`
	FormTitle string `yaml:"form_title"`
}

type FooterCopy struct {
	AboutTitle  string `yaml:"about_title"`
	About       string `yaml:"about"`
	SocialTitle string `yaml:"social_title"`
	Social      []Link `yaml:"social"`
}

// Copy is the static marketing text of every page.
type Copy struct {
	Home     HomeCopy     `yaml:"home"`
	About    AboutCopy    `yaml:"about"`
	Services ServicesCopy `yaml:"services"`
	Projects ProjectsCopy `yaml:"projects"`
	Contact  ContactCopy  `yaml:"contact"`
	Footer   FooterCopy   `yaml:"footer"`
}

// LoadCopy parses the page copy file.
func LoadCopy(fsys fs.FS, name string) (Copy, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Copy{}, fmt.Errorf("could not read page copy %s: %w", name, err)
	}
	var c Copy
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Copy{}, fmt.Errorf("could not parse page copy %s: %w", name, err)
	}
	seen := make(map[string]bool)
	for _, o := range c.Services.Offerings {
		if o.Slug == "" {
			continue
		}
		if seen[o.Slug] {
			return Copy{}, fmt.Errorf("duplicate service slug %q in %s", o.Slug, name)
		}
		seen[o.Slug] = true
	}
	return c, nil
}

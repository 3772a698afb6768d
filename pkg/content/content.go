// Package content holds the marketing copy rendered by the site.
package content

import "fmt"

type NavLink struct {
	Label  string
	Anchor string
}

type Feature struct {
	Icon        string
	Title       string
	Description string
}

type Video struct {
	ID          int
	Title       string
	Description string
	YouTubeID   string
}

// ThumbnailURL is the high resolution YouTube thumbnail.
func (v Video) ThumbnailURL() string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", v.YouTubeID)
}

// FallbackThumbnailURL is served when a video has no maxres thumbnail.
func (v Video) FallbackThumbnailURL() string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", v.YouTubeID)
}

// EmbedURL is the featured player URL. It autoplays muted and loops.
func (v Video) EmbedURL() string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&mute=1&loop=1&playlist=%s&controls=0&showinfo=0&rel=0&modestbranding=1&enablejsapi=1", v.YouTubeID, v.YouTubeID)
}

type Plan struct {
	Badge    string
	Name     string
	Summary  string
	Price    string
	Unit     string
	Bullets  []string
	Footnote string
}

type Panelist struct {
	Name string
	Role string
}

type Webinar struct {
	Badge      string
	Title      string
	Subtitle   string
	Intro      string
	Highlights []string
	Learn      []string
	Topics     []string
	Audience   []string
	Panelists  []Panelist
	Tagline    string
}

type SuccessCopy struct {
	Title   string
	Message string
}

func NavLinks() []NavLink {
	return []NavLink{
		{"Videos", "videos"},
		{"Features", "features"},
		{"Benefits", "benefits"},
		{"Contact", "contact"},
	}
}

func Videos() []Video {
	return []Video{
		{1, "AI-Powered Technical Screening", "See how our platform automates the technical screening process with intelligent algorithms", "dQw4w9WgXcQ"},
		{2, "Unbiased Candidate Evaluation", "Learn how we eliminate bias from the hiring process using advanced AI", "dQw4w9WgXcQ"},
		{3, "Seamless Integration", "Discover how Talmyra integrates with your existing workflow seamlessly", "dQw4w9WgXcQ"},
	}
}

func WhyFeatures() []Feature {
	return []Feature{
		{"clock", "Save Time & Resources", "Automate technical screening, coding tests, and phone interviews to reduce recruiter workload by up to 80%."},
		{"scale", "Unbiased Evaluations", "Get objective assessments based on real coding ability and communication skills, not just keywords on resumes."},
		{"trending-up", "Scale Effortlessly", "Screen 10x more candidates without increasing your hiring team's workload. Perfect for high-growth companies."},
		{"smile", "Better Candidate Experience", "Deliver flexible, anytime interviews with instant feedback, creating a positive impression of your company."},
	}
}

func ATSFeatures() []Feature {
	return []Feature{
		{"timer", "Faster time-to-fill", "Reduce time-to-hire by up to 60%"},
		{"zap", "Higher recruiter productivity", "3x recruiter efficiency with automation"},
		{"award", "Better candidate quality", "AI-powered candidate matching"},
		{"filter", "Reduced screening workload", "Automated resume screening"},
		{"target", "Stronger submittals and win-rate", "Data-driven candidate insights"},
		{"users", "Applicant tracking", "Complete candidate pipeline management"},
		{"send", "Outreach", "Automated candidate engagement"},
		{"shield-check", "Resume integrity check", "AI-powered resume verification"},
	}
}

func InterviewFeatures() []Feature {
	return []Feature{
		{"mic", "Smart AI voice interview", "Natural conversation AI interviews"},
		{"workflow", "Whole interview pipeline automated", "End-to-end interview automation"},
		{"brain", "AI evaluation", "Objective skill assessment"},
		{"eye", "Proctoring", "Advanced fraud detection"},
		{"layers", "Scale", "Interview unlimited candidates simultaneously"},
		{"bar-chart", "Real-time analytics", "Instant candidate performance insights"},
		{"file-text", "Hiring manager report", "Detailed candidate evaluation reports"},
		{"sliders", "Customizable assessments", "Tailored interview questions"},
	}
}

func Pricing() Plan {
	return Plan{
		Badge:   "Promo offer",
		Name:    "Starter",
		Summary: "Perfect for lean teams getting started with AI recruiting.",
		Price:   "$99",
		Unit:    "Up to 5 active jobs",
		Bullets: []string{
			"$99/month for up to 5 active jobs",
			"Unlimited candidates/applicants (no per-candidate fees)",
			"AI-powered ATS + interviewer in one workspace",
			"No setup fees. Cancel anytime.",
		},
		Footnote: "Need more jobs? Contact us for customized, high-volume pricing.",
	}
}

func UpcomingWebinar() Webinar {
	return Webinar{
		Badge:      "LIVE WEBINAR",
		Title:      "AI in Recruiting:",
		Subtitle:   "What It Means for You, Your Team, and Your Career",
		Intro:      "Join industry experts for a session exploring how AI is reshaping HR and your career trajectory.",
		Highlights: []string{"Expert Panel + Live Q&A", "No Sales Pitch"},
		Learn: []string{
			"Real AI applications in HR",
			"Boost productivity strategies",
			"Position for career growth",
			"Actionable implementation tips",
		},
		Topics: []string{
			"Real AI applications in HR operations",
			"How to boost team productivity without adding headcount",
			"Key signals HR leaders are using to drive better decision-making",
			"How to position yourself for career growth in an AI-driven org",
			"Myths vs. realities: What AI can and cannot do",
		},
		Audience: []string{
			"HR Directors and VPs",
			"Recruiting and Talent Acquisition Managers",
			"People Operations Professionals",
			"HR Tech Curators and Innovators",
		},
		Panelists: []Panelist{
			{"Christina L", "HRBP, Recruiting Leader"},
			{"TBD", "Head of Recruiting Agency"},
			{"Ben G.", "CEO, Talmyra (Moderator)"},
		},
		Tagline: "Join HR leaders shaping the future of recruiting",
	}
}

// ContactSuccess is the confirmation shown after a contact submission.
func ContactSuccess(demo bool) SuccessCopy {
	if demo {
		return SuccessCopy{
			Title:   "Demo Booked!",
			Message: "Perfect! We'll reach out within 24 hours to schedule your personalized demo and show you how Talmyra can transform your hiring process.",
		}
	}
	return SuccessCopy{
		Title:   "We're Setting Up Your Account",
		Message: "Great! We're preparing your free trial access. You'll receive your account details via email within 24 hours, and our team will reach out to help you get started.",
	}
}

func WebinarSuccess() SuccessCopy {
	return SuccessCopy{
		Title:   "You're Registered!",
		Message: "Thanks for registering. Check your inbox for the webinar details and calendar invite.",
	}
}

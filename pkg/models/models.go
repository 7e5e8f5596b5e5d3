package models

// TaskStatus is the lifecycle state of a single task.
type TaskStatus string

const (
	TaskToDo       TaskStatus = "To Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// CertificationStatus is the lifecycle state of a recommended certification.
type CertificationStatus string

const (
	CertRecommended CertificationStatus = "Recommended"
	CertInProgress  CertificationStatus = "In Progress"
	CertCompleted   CertificationStatus = "Completed"
)

// HiringProbability is the model's estimate of landing a role at a company.
type HiringProbability string

const (
	ProbabilityHigh   HiringProbability = "High"
	ProbabilityMedium HiringProbability = "Medium"
	ProbabilityLow    HiringProbability = "Low"
)

// MilestoneType categorizes a milestone on the transition timeline.
type MilestoneType string

const (
	MilestoneSkillDevelopment MilestoneType = "Skill Development"
	MilestoneNetworking       MilestoneType = "Networking"
	MilestoneApplication      MilestoneType = "Application"
	MilestoneProjectWork      MilestoneType = "Project Work"
	MilestonePersonalBranding MilestoneType = "Personal Branding"
)

// DocumentFile is an uploaded document (resume, evaluation, award citation)
// attached to the generation request. Data is base64 encoded.
type DocumentFile struct {
	FileName   string `json:"fileName"`
	MimeType   string `json:"mimeType"`
	Data       string `json:"data"`
	UploadDate string `json:"uploadDate"` // ISO timestamp
}

// RetirementLogistics captures the leave math inputs for a retiring
// service member. Day counts are calendar days.
type RetirementLogistics struct {
	RetirementDate           string `json:"retirementDate"` // YYYY-MM-DD
	CurrentLeaveBalance      int    `json:"currentLeaveBalance"`
	DesiredTerminalLeaveDays int    `json:"desiredTerminalLeaveDays"`
	PTDYDays                 int    `json:"ptdyDays"`
	CSPDays                  int    `json:"cspDays"`
}

// UserProfile is the input to plan generation. It is constructed once per
// request, immutable after submission, and persisted alongside its plan.
type UserProfile struct {
	TargetRole               string               `json:"targetRole"`
	TargetLocations          string               `json:"targetLocations,omitempty"`
	AdditionalConsiderations string               `json:"additionalConsiderations,omitempty"`
	Documents                []DocumentFile       `json:"documents"`
	Retirement               *RetirementLogistics `json:"retirement,omitempty"`
}

// Task is a single actionable item owned by exactly one phase. IDs are
// unique across the whole plan, not just within the owning phase.
type Task struct {
	ID            int        `json:"id"`
	Text          string     `json:"text"`
	Status        TaskStatus `json:"status"`
	InertiaAction string     `json:"inertiaAction,omitempty"` // a small, easy first step
	DueDate       string     `json:"dueDate,omitempty"`       // YYYY-MM-DD
}

// Phase is a dated segment of the plan. RecommendedCourseIDs reference
// entries in Plan.RecommendedCourses; dangling references are dropped at
// normalization and never reintroduced.
type Phase struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	StartDate            string `json:"startDate"` // YYYY-MM-DD, UTC calendar date
	EndDate              string `json:"endDate"`   // YYYY-MM-DD, UTC calendar date
	Objective            string `json:"objective"`
	Tasks                []Task `json:"tasks"`
	RecommendedCourseIDs []int  `json:"recommendedCourseIds"`
}

// Certification is a credential the model recommends pursuing. Owned by the
// plan directly, with the same plan-wide unique integer ID rule as tasks.
type Certification struct {
	ID             int                 `json:"id"`
	Name           string              `json:"name"`
	Status         CertificationStatus `json:"status"`
	CourseProvider string              `json:"courseProvider,omitempty"`
	CourseURL      string              `json:"courseUrl,omitempty"`
	Reasoning      string              `json:"reasoning,omitempty"`
}

// Course is a recommended course. Immutable after generation; referenced,
// never owned, by phases.
type Course struct {
	ID         int    `json:"id"`
	CourseName string `json:"courseName"`
	Provider   string `json:"provider"`
	URL        string `json:"url"`
	Reasoning  string `json:"reasoning"`
}

// Milestone is a dated marker on the transition timeline.
type Milestone struct {
	ID          int           `json:"id"`
	Date        string        `json:"date"` // YYYY-MM-DD
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        MilestoneType `json:"type"`
}

// CompanyProspect is a target employer with the model's hiring assessment.
type CompanyProspect struct {
	ID                string            `json:"id"`
	CompanyName       string            `json:"companyName"`
	Probability       HiringProbability `json:"probability"`
	CompensationRange string            `json:"compensationRange"`
	TargetLevel       string            `json:"targetLevel"`
	Reasoning         string            `json:"reasoning,omitempty"`
}

// SkillAssessment scores one skill on a 1-10 scale, current vs. required.
type SkillAssessment struct {
	SkillName     string `json:"skillName"`
	CurrentLevel  int    `json:"currentLevel"`
	RequiredLevel int    `json:"requiredLevel"`
}

// CareerTeamFeedback is the advisory-team debrief section of the plan.
type CareerTeamFeedback struct {
	OverallImpression         string            `json:"overallImpression"`
	ResumeFeedback            string            `json:"resumeFeedback"`
	SkillsGapAnalysis         string            `json:"skillsGapAnalysis"`
	SkillAssessments          []SkillAssessment `json:"skillAssessments"`
	LeaveCalculationBreakdown string            `json:"leaveCalculationBreakdown,omitempty"`
	TerminalLeaveDays         *int              `json:"terminalLeaveDays,omitempty"`
}

// GroundingSource is a web citation returned alongside a generation,
// deduplicated by URI.
type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// Plan is the canonical transition document. It is created wholesale by the
// normalizer, mutated only through the reducer, and replaced wholesale on
// load or "start new".
type Plan struct {
	Summary               string             `json:"summary"`
	CareerTeamFeedback    CareerTeamFeedback `json:"careerTeamFeedback"`
	SkillsToDevelop       []string           `json:"skillsToDevelop"`
	NetworkingSuggestions []string           `json:"networkingSuggestions"`
	ProjectIdeas          []string           `json:"projectIdeas"`
	Phases                []Phase            `json:"phases"`
	Milestones            []Milestone        `json:"milestones"`
	Certifications        []Certification    `json:"certifications"`
	RecommendedCourses    []Course           `json:"recommendedCourses"`
	CompanyProspects      []CompanyProspect  `json:"companyProspects"`
	GroundingSources      []GroundingSource  `json:"groundingSources"`
}

// ChatMessage is one turn in the advisory follow-up conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}

package api

// Wire types mirror the server DTOs. Dates travel as "2006-01-02" strings;
// a nil end_date means the role is current.

type Profile struct {
	ID        string `json:"id"`
	Bio       string `json:"bio"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type Experience struct {
	ID          string  `json:"id"`
	Company     string  `json:"company"`
	Role        string  `json:"role"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// CompleteProfile is the aggregate snapshot: the bio record (nil until the
// first save), projects newest-created first, experiences newest-start
// first.
type CompleteProfile struct {
	Profile     *Profile     `json:"profile"`
	Projects    []Project    `json:"projects"`
	Experiences []Experience `json:"experiences"`
}

type ProjectForm struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type ExperienceForm struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// ProjectPatch is a partial update: nil fields are omitted from the request
// body and left untouched server-side.
type ProjectPatch struct {
	Title       *string   `json:"title,omitempty"`
	Link        *string   `json:"link,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

type ExperiencePatch struct {
	Company     *string `json:"company,omitempty"`
	Role        *string `json:"role,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Description *string `json:"description,omitempty"`
}

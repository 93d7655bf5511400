package vault

import (
	"time"

	"github.com/FidelisKagashe26/godcares/core"
)

// Evidence media types.
const (
	MediaPDF   = "pdf"
	MediaImage = "image"
	MediaVideo = "video"
	MediaAudio = "audio"
)

// Annotation is a highlight box over an image. Coordinates are percentages of the frame.
type Annotation struct {
	X    float64 `json:"x" validate:"pct"`
	Y    float64 `json:"y" validate:"pct"`
	W    float64 `json:"w" validate:"pct"`
	H    float64 `json:"h" validate:"pct"`
	Text string  `json:"text"`
}

// Valid reports whether the box lies within the frame.
func (a Annotation) Valid() bool {
	if err := core.Validate.Struct(a); err != nil {
		return false
	}
	return a.X+a.W <= 100 && a.Y+a.H <= 100
}

type AuthorProfile struct {
	Name       string `json:"name"`
	Role       string `json:"role,omitempty"`
	Era        string `json:"era,omitempty"`
	Bio        string `json:"bio,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`
	Credential string `json:"credential,omitempty"`
}

type Translation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Transcript  string `json:"transcript,omitempty"`
}

type EvidenceItem struct {
	ID           int                    `json:"id"`
	Title        string                 `json:"title"`
	Category     string                 `json:"category"`
	Description  string                 `json:"description"`
	MediaType    string                 `json:"media_type"`
	MediaURL     string                 `json:"media_url"`
	ThumbnailURL string                 `json:"thumbnail_url,omitempty"`
	Annotations  []Annotation           `json:"annotations"`
	Author       AuthorProfile          `json:"author"`
	Translations map[string]Translation `json:"translations,omitempty"`
	Provenance   string                 `json:"provenance"`
	Year         string                 `json:"year,omitempty"`
}

// Localized returns the item with its title and description in lang, when a translation exists.
func (e EvidenceItem) Localized(lang string) EvidenceItem {
	tr, ok := e.Translations[core.CleanString(lang, true /* lower */)]
	if !ok {
		return e
	}
	if tr.Title != "" {
		e.Title = tr.Title
	}
	if tr.Description != "" {
		e.Description = tr.Description
	}
	return e
}

// ValidAnnotations splits the annotations into the ones inside the frame and the count dropped.
func (e EvidenceItem) ValidAnnotations() ([]Annotation, int) {
	valid := make([]Annotation, 0, len(e.Annotations))
	for _, a := range e.Annotations {
		if a.Valid() {
			valid = append(valid, a)
		}
	}
	return valid, len(e.Annotations) - len(valid)
}

type DeceptionCase struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Claim      string   `json:"claim"`
	Truth      string   `json:"truth"`
	Scriptures []string `json:"scriptures,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
}

type QuestionVaultItem struct {
	ID        int       `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Scripture string    `json:"scripture,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewQuestion contains information needed to submit a question to the vault.
type NewQuestion struct {
	Name     string `json:"name,omitempty" validate:"max=120"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Category string `json:"category,omitempty" validate:"max=60"`
	Question string `json:"question" validate:"required,notblank,min=10,max=2000"`
}

func (nq *NewQuestion) Validate() error {
	nq.Name = core.CleanString(nq.Name)
	nq.Email = core.CleanString(nq.Email, true /* lower */)
	nq.Category = core.CleanString(nq.Category)
	nq.Question = core.CleanString(nq.Question)
	return core.Validate.Struct(nq)
}

// SubmittedQuestion is the backend's acknowledgement of a question.
type SubmittedQuestion struct {
	ID      int    `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SubmitResult carries the acknowledgement plus already answered questions that look alike.
type SubmitResult struct {
	SubmittedQuestion
	Similar []QuestionVaultItem `json:"similar"`
}

type QueryFilter struct {
	Tab    string `query:"tab"`
	Search string `query:"q"`
	Lang   string `query:"lang"`
}

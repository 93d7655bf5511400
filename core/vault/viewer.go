package vault

import (
	"context"
	"time"

	"github.com/FidelisKagashe26/godcares/core/view"
)

// Document viewer stages.
const (
	StageProvenance = "provenance"
	StageNavigating = "navigating"
	StageVerified   = "verified"
)

// DocumentViewer walks one evidence item through provenance, navigation and verification.
type DocumentViewer struct {
	Item        EvidenceItem
	steps       *view.Stepper
	verifyDelay time.Duration
}

func NewDocumentViewer(item EvidenceItem, verifyDelay time.Duration) *DocumentViewer {
	return &DocumentViewer{
		Item:        item,
		steps:       view.NewStepper(StageProvenance, StageNavigating, StageVerified),
		verifyDelay: verifyDelay,
	}
}

func (v *DocumentViewer) Stage() string { return v.steps.Stage() }

// Navigate leaves the provenance card for the document itself.
func (v *DocumentViewer) Navigate() error {
	return v.steps.AdvanceTo(StageNavigating)
}

// Verify plays the verification delay, then marks the document verified.
func (v *DocumentViewer) Verify(ctx context.Context) error {
	if v.steps.Is(StageProvenance) {
		if err := v.Navigate(); err != nil {
			return err
		}
	}
	_, err := v.steps.AdvanceAfter(ctx, v.verifyDelay)
	return err
}

func (v *DocumentViewer) Trail() []string { return v.steps.Trail() }

// Package report defines the analysis request and report JSON shapes.
package report

import "encoding/json"

// Request is the analysis input: which documents to process and for whom.
type Request struct {
	Documents     []DocumentRef   `json:"documents"`
	Persona       Persona         `json:"persona"`
	JobToBeDone   JobToBeDone     `json:"job_to_be_done"`
	ChallengeInfo json.RawMessage `json:"challenge_info,omitempty"`
}

type DocumentRef struct {
	Filename string `json:"filename"`
}

type Persona struct {
	Role string `json:"role"`
}

type JobToBeDone struct {
	Task string `json:"task"`
}

// Report is the final output document. Written once per run, never mutated
// after serialization.
type Report struct {
	Metadata           Metadata             `json:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}

type Metadata struct {
	InputDocuments      []string        `json:"input_documents"`
	Persona             string          `json:"persona"`
	JobToBeDone         string          `json:"job_to_be_done"`
	ProcessingTimestamp string          `json:"processing_timestamp"`
	ChallengeInfo       json.RawMessage `json:"challenge_info,omitempty"`
}

// ExtractedSection is one selected section in selection order.
type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"` // 1-based
	PageNumber     int    `json:"page_number"`     // 1-based
}

// SubsectionAnalysis carries the refined excerpt for one selected section.
type SubsectionAnalysis struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"` // 1-based
}

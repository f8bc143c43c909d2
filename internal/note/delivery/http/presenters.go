package http

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"ai-notes/internal/note"
	"ai-notes/pkg/datemath"
	"ai-notes/pkg/response"
)

// --- Field types ---

// tagList accepts a JSON array of strings or a comma separated string.
type tagList struct {
	set  bool
	tags []string
}

func (t *tagList) UnmarshalJSON(b []byte) error {
	t.set = true
	t.tags = nil

	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		t.tags = strings.Split(s, ",")
		return nil
	}
	return json.Unmarshal(trimmed, &t.tags)
}

// optionalValue records whether a schedule field was present in the payload
// and, if so, what it held. null and "" both mean empty.
type optionalValue struct {
	set   bool
	value datemath.Value
}

func (o *optionalValue) UnmarshalJSON(b []byte) error {
	o.set = true

	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		o.value = datemath.RawValue(s)
		return nil
	}
	// null, numbers and anything else go through the string normalizer.
	o.value = datemath.RawValue(string(trimmed))
	return nil
}

func (o optionalValue) get() datemath.Value {
	if !o.set {
		return datemath.EmptyValue()
	}
	return o.value
}

// --- Request DTOs ---

type createReq struct {
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Tags         tagList       `json:"tags" swaggertype:"array,string"`
	EventDate    optionalValue `json:"event_date" swaggertype:"string"`
	EventTime    optionalValue `json:"event_time" swaggertype:"string"`
	AutoSchedule bool          `json:"auto_schedule"`
}

func (r createReq) toInput() note.CreateInput {
	return note.CreateInput{
		Title:        r.Title,
		Content:      r.Content,
		Tags:         r.Tags.tags,
		EventDate:    r.EventDate.get(),
		EventTime:    r.EventTime.get(),
		AutoSchedule: r.AutoSchedule,
	}
}

// ---

type listReq struct {
	Query  string `form:"q"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() note.ListInput {
	return note.ListInput{
		Query:  r.Query,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// ---

type searchReq struct {
	Query string `form:"q"`
	Limit int    `form:"limit"`
}

func (r searchReq) toInput() note.SearchInput {
	return note.SearchInput{Query: r.Query, Limit: r.Limit}
}

// ---

type updateReq struct {
	ID        string        `json:"-"` // populated from URI param
	Title     *string       `json:"title"`
	Content   *string       `json:"content"`
	Tags      tagList       `json:"tags" swaggertype:"array,string"`
	EventDate optionalValue `json:"event_date" swaggertype:"string"`
	EventTime optionalValue `json:"event_time" swaggertype:"string"`
}

func (r updateReq) toInput() note.UpdateInput {
	return note.UpdateInput{
		ID:           r.ID,
		Title:        r.Title,
		Content:      r.Content,
		TagsSet:      r.Tags.set,
		Tags:         r.Tags.tags,
		EventDateSet: r.EventDate.set,
		EventDate:    r.EventDate.get(),
		EventTimeSet: r.EventTime.set,
		EventTime:    r.EventTime.get(),
	}
}

// ---

type generateReq struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
}

func (r generateReq) toInput() note.GenerateInput {
	return note.GenerateInput{Text: r.Text, Language: r.Language}
}

type generateAndSaveReq struct {
	Text      string        `json:"text" binding:"required"`
	Language  string        `json:"language"`
	EventDate optionalValue `json:"event_date" swaggertype:"string"`
	EventTime optionalValue `json:"event_time" swaggertype:"string"`
}

func (r generateAndSaveReq) toInput() note.GenerateAndSaveInput {
	return note.GenerateAndSaveInput{
		Text:      r.Text,
		Language:  r.Language,
		EventDate: r.EventDate.get(),
		EventTime: r.EventTime.get(),
	}
}

// ---

type translateReq struct {
	ID             string  `json:"-"` // populated from URI param
	TargetLanguage string  `json:"target_language" binding:"required"`
	Title          *string `json:"title"`
	Content        *string `json:"content"`
}

func (r translateReq) toInput() note.TranslateInput {
	return note.TranslateInput{
		ID:             r.ID,
		TargetLanguage: r.TargetLanguage,
		Title:          r.Title,
		Content:        r.Content,
	}
}

// ---

type inferReq struct {
	Text      string `json:"text" binding:"required"`
	Reference string `json:"reference"` // RFC3339, optional
}

func (r inferReq) toInput() (note.InferInput, error) {
	in := note.InferInput{Text: r.Text}
	if r.Reference == "" {
		return in, nil
	}
	ref, err := time.Parse(time.RFC3339, r.Reference)
	if err != nil {
		return in, errInvalidReference
	}
	in.Reference = ref
	return in, nil
}

// --- Response DTOs ---

type noteResp struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Tags      []string          `json:"tags"`
	EventDate *string           `json:"event_date"`
	EventTime *string           `json:"event_time"`
	CreatedAt response.DateTime `json:"created_at" swaggertype:"string"`
	UpdatedAt response.DateTime `json:"updated_at" swaggertype:"string"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newNoteResp(n note.Note) noteResp {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return noteResp{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		EventDate: optional(n.EventDate),
		EventTime: optional(n.EventTime),
		CreatedAt: response.DateTime(n.CreatedAt),
		UpdatedAt: response.DateTime(n.UpdatedAt),
	}
}

func newNoteResps(notes []note.Note) []noteResp {
	out := make([]noteResp, len(notes))
	for i, n := range notes {
		out[i] = newNoteResp(n)
	}
	return out
}

type listResp struct {
	Notes  []noteResp `json:"notes"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out note.ListOutput) listResp {
	return listResp{
		Notes:  newNoteResps(out.Notes),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type searchResp struct {
	Notes []noteResp `json:"notes"`
	Query string     `json:"query"`
	Count int        `json:"count"`
}

func (h *handler) newSearchResp(out note.SearchOutput) searchResp {
	return searchResp{
		Notes: newNoteResps(out.Notes),
		Query: out.Query,
		Count: len(out.Notes),
	}
}

type generateResp struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Tags         []string `json:"tags"`
	EventDate    *string  `json:"event_date"`
	EventTime    *string  `json:"event_time"`
	OriginalText string   `json:"original_text"`
	Language     string   `json:"language"`
}

func (h *handler) newGenerateResp(out note.GenerateOutput) generateResp {
	tags := out.Tags
	if tags == nil {
		tags = []string{}
	}
	return generateResp{
		Title:        out.Title,
		Content:      out.Content,
		Tags:         tags,
		EventDate:    optional(out.EventDate),
		EventTime:    optional(out.EventTime),
		OriginalText: out.OriginalText,
		Language:     out.Language,
	}
}

type generateAndSaveResp struct {
	Note         noteResp `json:"note"`
	OriginalText string   `json:"original_text"`
	Language     string   `json:"language"`
}

func (h *handler) newGenerateAndSaveResp(out note.GenerateAndSaveOutput) generateAndSaveResp {
	return generateAndSaveResp{
		Note:         newNoteResp(out.Note),
		OriginalText: out.OriginalText,
		Language:     out.Language,
	}
}

type translateResp struct {
	ID                string `json:"id"`
	TargetLanguage    string `json:"target_language"`
	TranslatedTitle   string `json:"translated_title"`
	TranslatedContent string `json:"translated_content"`
}

func (h *handler) newTranslateResp(out note.TranslateOutput) translateResp {
	return translateResp{
		ID:                out.ID,
		TargetLanguage:    out.TargetLanguage,
		TranslatedTitle:   out.Title,
		TranslatedContent: out.Content,
	}
}

type inferResp struct {
	EventDate *string `json:"event_date"`
	EventTime *string `json:"event_time"`
	Reference string  `json:"reference"`
}

func (h *handler) newInferResp(out note.InferOutput) inferResp {
	return inferResp{
		EventDate: optional(out.EventDate),
		EventTime: optional(out.EventTime),
		Reference: out.Reference.Format(time.RFC3339),
	}
}

type statsResp struct {
	TotalNotes int    `json:"total_notes"`
	Driver     string `json:"driver"`
}

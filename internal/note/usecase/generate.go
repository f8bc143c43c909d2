package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ai-notes/internal/note"
	repo "ai-notes/internal/note/repository"
	"ai-notes/pkg/llmprovider"
)

// extractedNote is the JSON shape the extraction prompt asks for.
type extractedNote struct {
	Title *string         `json:"Title"`
	Notes *string         `json:"Notes"`
	Tags  json.RawMessage `json:"Tags"`
}

// Generate drafts a structured note from free text and infers its schedule.
func (uc *implUseCase) Generate(ctx context.Context, input note.GenerateInput) (note.GenerateOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return note.GenerateOutput{}, note.ErrTextRequired
	}
	language := uc.languageOr(input.Language)

	reply, err := uc.complete(ctx, buildExtractPrompt(language, uc.dateMath.Now()), text)
	if err != nil {
		return note.GenerateOutput{}, err
	}

	draft, err := parseExtraction(reply)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Generate parseExtraction: %v", err)
		return note.GenerateOutput{}, err
	}

	eventDate, eventTime := uc.schedule(text, draft.Content)

	return note.GenerateOutput{
		Title:        draft.Title,
		Content:      draft.Content,
		Tags:         draft.Tags,
		EventDate:    eventDate,
		EventTime:    eventTime,
		OriginalText: input.Text,
		Language:     language,
	}, nil
}

// GenerateAndSave drafts a note and persists it. Explicit event values in the
// input take precedence over inferred ones.
func (uc *implUseCase) GenerateAndSave(ctx context.Context, input note.GenerateAndSaveInput) (note.GenerateAndSaveOutput, error) {
	draft, err := uc.Generate(ctx, note.GenerateInput{Text: input.Text, Language: input.Language})
	if err != nil {
		return note.GenerateAndSaveOutput{}, err
	}

	eventDate := draft.EventDate
	if d := normalizeDate(input.EventDate); d != "" {
		eventDate = d
	}
	eventTime := draft.EventTime
	if t := normalizeTime(input.EventTime); t != "" {
		eventTime = t
	}

	n, err := uc.repo.CreateNote(ctx, repo.CreateNoteOptions{
		Title:     draft.Title,
		Content:   draft.Content,
		Tags:      draft.Tags,
		EventDate: eventDate,
		EventTime: eventTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateAndSave CreateNote: %v", err)
		return note.GenerateAndSaveOutput{}, err
	}

	return note.GenerateAndSaveOutput{
		Note:         n,
		OriginalText: draft.OriginalText,
		Language:     draft.Language,
	}, nil
}

// complete sends one system+user exchange to the LLM and returns its text.
func (uc *implUseCase) complete(ctx context.Context, system, user string) (string, error) {
	if uc.llm == nil {
		return "", note.ErrLLMUnavailable
	}

	resp, err := uc.llm.GenerateContent(ctx, llmprovider.NewTextRequest(system, user))
	if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		return "", note.ErrLLMUnavailable
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.complete GenerateContent: %v", err)
		return "", fmt.Errorf("%w: %v", note.ErrLLMFailed, err)
	}
	return resp.Text(), nil
}

type draftNote struct {
	Title   string
	Content string
	Tags    []string
}

// parseExtraction decodes the model reply, falling back to the first {...}
// block when the reply carries extra prose.
func parseExtraction(reply string) (draftNote, error) {
	var raw extractedNote
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &raw); err != nil {
		block, ok := firstJSONObject(reply)
		if !ok {
			return draftNote{}, fmt.Errorf("%w: no JSON object in reply", note.ErrLLMResponseInvalid)
		}
		raw = extractedNote{}
		if err := json.Unmarshal(block, &raw); err != nil {
			return draftNote{}, fmt.Errorf("%w: %v", note.ErrLLMResponseInvalid, err)
		}
	}

	if raw.Title == nil || raw.Notes == nil {
		return draftNote{}, fmt.Errorf("%w: missing Title or Notes", note.ErrLLMResponseInvalid)
	}
	draft := draftNote{
		Title:   strings.TrimSpace(*raw.Title),
		Content: strings.TrimSpace(*raw.Notes),
		Tags:    decodeTags(raw.Tags),
	}
	if draft.Title == "" || draft.Content == "" {
		return draftNote{}, fmt.Errorf("%w: blank Title or Notes", note.ErrLLMResponseInvalid)
	}
	return draft, nil
}

// firstJSONObject returns the first {...} in s that decodes as a complete JSON
// object. Braces in surrounding prose and any later objects are ignored.
func firstJSONObject(s string) (json.RawMessage, bool) {
	for i := strings.IndexByte(s, '{'); i >= 0; {
		var block json.RawMessage
		if err := json.NewDecoder(strings.NewReader(s[i:])).Decode(&block); err == nil {
			return block, true
		}
		next := strings.IndexByte(s[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return nil, false
}

// decodeTags accepts either a JSON list or a comma separated string.
func decodeTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		tags := make([]string, 0, len(list))
		for _, v := range list {
			if s, ok := v.(string); ok {
				tags = append(tags, s)
			}
		}
		return cleanTags(tags)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return cleanTags(strings.Split(s, ","))
	}
	return []string{}
}

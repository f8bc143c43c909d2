package usecase

import (
	"context"
	"strings"

	"ai-notes/internal/note"
)

// Translate translates a stored note's title and content. Either part may be
// overridden by the input; blank parts are skipped.
func (uc *implUseCase) Translate(ctx context.Context, input note.TranslateInput) (note.TranslateOutput, error) {
	language := strings.TrimSpace(input.TargetLanguage)
	if language == "" {
		return note.TranslateOutput{}, note.ErrTargetLanguageRequired
	}

	n, err := uc.getNote(ctx, input.ID)
	if err != nil {
		return note.TranslateOutput{}, err
	}

	title := n.Title
	if input.Title != nil {
		title = *input.Title
	}
	content := n.Content
	if input.Content != nil {
		content = *input.Content
	}
	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return note.TranslateOutput{}, note.ErrNothingToTranslate
	}

	out := note.TranslateOutput{ID: n.ID, TargetLanguage: language}
	if out.Title, err = uc.translate(ctx, language, title); err != nil {
		return note.TranslateOutput{}, err
	}
	if out.Content, err = uc.translate(ctx, language, content); err != nil {
		return note.TranslateOutput{}, err
	}
	return out, nil
}

// translate returns "" for blank text and serves repeats from the cache.
func (uc *implUseCase) translate(ctx context.Context, language, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	key := strings.ToLower(language) + "\x00" + text
	if cached, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "uc.translate: cache hit language=%s", language)
		return cached, nil
	}

	translated, err := uc.complete(ctx, "", buildTranslatePrompt(language, text))
	if err != nil {
		return "", err
	}
	translated = strings.TrimSpace(translated)

	uc.cache.Add(key, translated)
	return translated, nil
}

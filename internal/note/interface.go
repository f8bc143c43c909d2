package note

import "context"

// UseCase is the business surface of the note domain.
type UseCase interface {
	// Note CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)

	// LLM-assisted drafting and translation
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
	GenerateAndSave(ctx context.Context, input GenerateAndSaveInput) (GenerateAndSaveOutput, error)
	Translate(ctx context.Context, input TranslateInput) (TranslateOutput, error)

	// Infer runs the date/time inference engine without touching storage.
	Infer(ctx context.Context, input InferInput) (InferOutput, error)
	Stats(ctx context.Context) (StatsOutput, error)
}

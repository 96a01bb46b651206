package commands

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"calcvault/internal/application"
	"calcvault/internal/domain"
	"calcvault/internal/ports"
)

// UploadResult contains the result of an upload batch
type UploadResult struct {
	Result
	Stored []domain.File // in completion order
	Failed []string      // names of sources that could not be read
}

// UploadCommand reads a batch of files concurrently and stores each one as
// soon as its read completes. Every completion is its own vault update, so a
// slow file never holds back the others and each stored file triggers its
// own save.
type UploadCommand struct {
	vault    *application.Vault
	ids      domain.IDGenerator
	log      zerolog.Logger
	Sources  []ports.UploadSource
	FolderID string

	// OnStored, when set, is called after each file is persisted
	OnStored func(domain.File)
}

// NewUploadCommand creates a new UploadCommand
func NewUploadCommand(vault *application.Vault, ids domain.IDGenerator, log zerolog.Logger, sources []ports.UploadSource, folderID string) *UploadCommand {
	return &UploadCommand{
		vault:    vault,
		ids:      ids,
		log:      log,
		Sources:  sources,
		FolderID: application.NormalizeFolderID(folderID),
	}
}

// Validate checks if the upload operation is valid
func (c *UploadCommand) Validate() error {
	if len(c.Sources) == 0 {
		return &application.ValidationError{
			Field:   "sources",
			Message: "no files selected",
		}
	}
	return nil
}

// Execute runs the upload command and waits for every read to finish
func (c *UploadCommand) Execute(ctx context.Context) (*UploadResult, error) {
	if err := c.Validate(); err != nil {
		return &UploadResult{Result: *skipped(err)}, nil
	}

	var (
		mu     sync.Mutex
		result UploadResult
	)

	var g errgroup.Group
	for _, src := range c.Sources {
		g.Go(func() error {
			mimeType, content, err := src.ReadAll(ctx)
			if err != nil {
				c.log.Warn().Err(err).Str("file", src.Name()).Msg("upload read failed")
				mu.Lock()
				result.Failed = append(result.Failed, src.Name())
				mu.Unlock()
				return nil
			}

			file, err := c.store(ctx, src.Name(), mimeType, content)
			if err != nil {
				return err
			}

			mu.Lock()
			result.Stored = append(result.Stored, file)
			mu.Unlock()

			if c.OnStored != nil {
				c.OnStored(file)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to upload: %w", err)
	}

	result.Applied = len(result.Stored) > 0
	result.Message = fmt.Sprintf("Uploaded %d file(s)", len(result.Stored))
	if len(result.Failed) > 0 {
		result.Message += fmt.Sprintf(", %d failed", len(result.Failed))
	}
	return &result, nil
}

// store appends one file. The document is re-read inside the vault update,
// never reused from before the read started.
func (c *UploadCommand) store(ctx context.Context, name, mimeType string, content []byte) (domain.File, error) {
	file := domain.File{
		ID:       c.ids.NewID(),
		Name:     name,
		MimeType: mimeType,
		Data:     domain.EncodeDataURL(mimeType, content),
		FolderID: c.FolderID,
	}

	_, _, err := c.vault.Update(ctx, func(doc *domain.Document) bool {
		// The target folder may have been deleted while the read was in flight
		if !doc.HasContainer(file.FolderID) {
			file.FolderID = domain.RootID
		}
		doc.Files = append(doc.Files, file)
		return true
	})
	if err != nil {
		return domain.File{}, err
	}

	c.log.Debug().Str("file", name).Str("folder", file.FolderID).Int("bytes", len(content)).Msg("file stored")
	return file, nil
}

// Package portal orchestrates the hidden vault: opening it through the lock,
// navigating folders and running mutations against the active folder.
package portal

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"calcvault/internal/application"
	"calcvault/internal/application/auth"
	"calcvault/internal/application/commands"
	"calcvault/internal/domain"
	"calcvault/internal/ports"
)

// Controller holds the session state of the portal: whether it is open, the
// active folder and the item selected for the context menu. The document
// itself always lives in the vault.
type Controller struct {
	vault *application.Vault
	gate  *auth.Gate
	ids   domain.IDGenerator
	log   zerolog.Logger

	mu       sync.Mutex
	open     bool
	active   string
	selected string
}

// NewController creates a closed portal
func NewController(vault *application.Vault, gate *auth.Gate, ids domain.IDGenerator, log zerolog.Logger) *Controller {
	return &Controller{
		vault:  vault,
		gate:   gate,
		ids:    ids,
		log:    log,
		active: domain.RootID,
	}
}

// Open starts a fresh unlock attempt. Nothing from a previous session is
// carried over. When the gate unlocks the active folder is the root.
func (c *Controller) Open(ctx context.Context) (auth.State, error) {
	c.gate.Reset()

	doc, err := c.vault.Load(ctx)
	if err != nil {
		return auth.Locked, err
	}

	state := c.gate.Begin(ctx, doc)

	c.mu.Lock()
	c.open = true
	c.selected = ""
	if state == auth.Unlocked {
		c.active = domain.RootID
	}
	c.mu.Unlock()

	c.log.Debug().Stringer("state", state).Msg("portal opened")
	return state, nil
}

// SubmitSecret answers the lock challenge
func (c *Controller) SubmitSecret(ctx context.Context, value string) (auth.State, error) {
	doc, err := c.vault.Load(ctx)
	if err != nil {
		return c.gate.State(), err
	}

	state := c.gate.SubmitSecret(doc, value)
	if state == auth.Unlocked {
		c.mu.Lock()
		c.active = domain.RootID
		c.mu.Unlock()
	}
	return state, nil
}

// Close hides the portal and locks it again
func (c *Controller) Close() {
	c.gate.Reset()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
	c.active = domain.RootID
	c.selected = ""
}

// IsOpen reports whether the portal is showing, locked or not
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// State returns the lock state of the current session
func (c *Controller) State() auth.State {
	return c.gate.State()
}

// NavigateTo makes folderID the active folder. Navigation never asks for the
// secret again.
func (c *Controller) NavigateTo(folderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = application.NormalizeFolderID(folderID)
	c.selected = ""
}

// Up navigates to the parent of the active folder. A folder whose parent no
// longer exists leads back to the root.
func (c *Controller) Up(ctx context.Context) error {
	doc, err := c.vault.Load(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	parent := domain.RootID
	if f, ok := doc.FindFolder(c.active); ok && doc.HasContainer(f.ParentID) {
		parent = f.ParentID
	}
	c.active = parent
	c.selected = ""
	return nil
}

// ActiveFolder returns the folder new items go into
func (c *Controller) ActiveFolder() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// View computes the content of the active folder
func (c *Controller) View(ctx context.Context) (*domain.FolderView, error) {
	if err := c.requireUnlocked(); err != nil {
		return nil, err
	}
	return commands.NewViewFolderCommand(c.vault, c.ActiveFolder()).Execute(ctx)
}

// Upload stores every source in the active folder. Each file is saved as soon
// as its own read completes; onStored may be nil.
func (c *Controller) Upload(ctx context.Context, sources []ports.UploadSource, onStored func(domain.File)) (*commands.UploadResult, error) {
	if err := c.requireUnlocked(); err != nil {
		return nil, err
	}
	cmd := commands.NewUploadCommand(c.vault, c.ids, c.log, sources, c.ActiveFolder())
	cmd.OnStored = onStored
	return cmd.Execute(ctx)
}

// CreateFolder creates a folder in the active folder. Blank names are ignored.
func (c *Controller) CreateFolder(ctx context.Context, name string) (*commands.CreateFolderResult, error) {
	if err := c.requireUnlocked(); err != nil {
		return nil, err
	}
	return commands.NewCreateFolderCommand(c.vault, c.ids, name, c.ActiveFolder()).Execute(ctx)
}

// Delete removes the file or folder with the given ID. When the active
// folder itself disappears the portal falls back to the root.
func (c *Controller) Delete(ctx context.Context, id string) (*commands.DeleteResult, error) {
	if err := c.requireUnlocked(); err != nil {
		return nil, err
	}

	result, err := commands.NewDeleteCommand(c.vault, id).Execute(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.selected == id {
		c.selected = ""
	}
	if result.Applied && c.active == id {
		c.active = domain.RootID
	}
	c.mu.Unlock()

	return result, nil
}

// Move re-parents a file. Folders and unknown IDs are ignored.
func (c *Controller) Move(ctx context.Context, fileID, destFolderID string) (*commands.MoveFileResult, error) {
	if err := c.requireUnlocked(); err != nil {
		return nil, err
	}
	return commands.NewMoveFileCommand(c.vault, fileID, destFolderID).Execute(ctx)
}

// Export decodes a file into dir so the system opener can play it. An empty
// dir exports to a fresh temporary directory.
func (c *Controller) Export(ctx context.Context, fileID, dir string) (*commands.ExportFileResult, error) {
	if err := c.requireUnlocked(); err != nil {
		return nil, err
	}
	return commands.NewExportFileCommand(c.vault, fileID, dir).Execute(ctx)
}

// Select remembers the item the context menu acts on
func (c *Controller) Select(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = id
}

// Selected returns the item the context menu acts on
func (c *Controller) Selected() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Folders lists the destinations offered by the folder picker
func (c *Controller) Folders(ctx context.Context) ([]commands.FolderOption, error) {
	if err := c.requireUnlocked(); err != nil {
		return nil, err
	}
	return commands.NewListFoldersCommand(c.vault).Execute(ctx)
}

// Wipe erases the vault and closes the portal. It needs no unlock.
func (c *Controller) Wipe(ctx context.Context) error {
	if _, err := commands.NewWipeCommand(c.vault).Execute(ctx); err != nil {
		return err
	}
	c.Close()
	return nil
}

func (c *Controller) requireUnlocked() error {
	if c.gate.State() != auth.Unlocked {
		return application.ErrLocked
	}
	return nil
}

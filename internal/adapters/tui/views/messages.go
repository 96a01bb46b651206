package views

import (
	"calcvault/internal/application/auth"
	"calcvault/internal/application/commands"
)

// View switching messages

// SwitchToCalculatorMsg hides the portal behind the calculator
type SwitchToCalculatorMsg struct{}

// SwitchToPortalMsg shows the folder grid
type SwitchToPortalMsg struct{}

// SwitchToMenuMsg opens the context menu. Item is nil when no tile is selected.
type SwitchToMenuMsg struct {
	Item *Tile
}

// SwitchToPickerMsg opens the folder picker for moving a file
type SwitchToPickerMsg struct {
	File Tile
}

// SwitchToCreateFolderMsg opens the folder name prompt
type SwitchToCreateFolderMsg struct{}

// SwitchToUploadMsg opens the upload file picker
type SwitchToUploadMsg struct{}

// SwitchToSettingsMsg opens the lock settings
type SwitchToSettingsMsg struct{}

// SwitchToHelpMsg opens the help screen
type SwitchToHelpMsg struct{}

// Gesture messages, sent from detector timers through the program

// RevealPortalMsg is sent when the backspace key was held long enough
type RevealPortalMsg struct{}

// OpenLinkMsg is sent when the AC key was held long enough
type OpenLinkMsg struct{}

// ItemHoldMsg is sent when a tile was held long enough
type ItemHoldMsg struct{}

// Vault and portal messages

// VaultChangedMsg is sent after every save or wipe of the vault
type VaultChangedMsg struct{}

// WipeRequestedMsg is sent when the calculator evaluated the wipe code
type WipeRequestedMsg struct{}

// WipeDoneMsg reports the end of a wipe
type WipeDoneMsg struct {
	Err error
}

// PortalOpenedMsg reports the lock state after opening the portal
type PortalOpenedMsg struct {
	State auth.State
	Err   error
}

// SecretCheckedMsg reports the lock state after a secret was submitted
type SecretCheckedMsg struct {
	State auth.State
	Err   error
}

// ActionDoneMsg reports the outcome of a portal mutation
type ActionDoneMsg struct {
	Result commands.Result
	Err    error
}

// UploadDoneMsg reports the outcome of an upload batch
type UploadDoneMsg struct {
	Result *commands.UploadResult
	Err    error
}

package ports

// Opener hands URLs and files over to the operating system
type Opener interface {
	// OpenURL opens a URL in the default browser
	OpenURL(url string) error

	// OpenFile opens a local file with its default application
	OpenFile(path string) error
}

package entities

// RepoContext is the state of a local Git repository relevant to opening a
// pull request for a generated message.
type RepoContext struct {
	Branch    string
	RemoteURL string
}

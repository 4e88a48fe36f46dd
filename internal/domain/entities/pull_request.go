package entities

import (
	gitforgeEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

// PullRequestInput is re-exported from gitforge.
type PullRequestInput = gitforgeEntities.PullRequestInput

// NewPullRequestInput assembles the forge input for one rendered message.
func NewPullRequestInput(
	message Message,
	sourceBranch, targetBranch string,
	autoComplete bool,
) *PullRequestInput {
	return &PullRequestInput{
		SourceBranch: sourceBranch,
		TargetBranch: targetBranch,
		Title:        message.Title,
		Description:  message.Body,
		AutoComplete: autoComplete,
	}
}

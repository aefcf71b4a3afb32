package project

import "github.com/fjglira/suitegen/internal/domain"

// SnippetsGroupID is the group id given to snippet commands.
const SnippetsGroupID = "snippets"

// NormalizeSuite copies group and test ids down to commands that omit them.
func NormalizeSuite(s *domain.Suite) {
	for gi := range s.Groups {
		NormalizeTests(s.Groups[gi].ID, s.Groups[gi].Tests)
	}
}

// NormalizeTests sets missing GroupID and TestID on every command of tests.
func NormalizeTests(groupID string, tests []domain.Test) {
	for ti := range tests {
		for ci := range tests[ti].Commands {
			cmd := &tests[ti].Commands[ci]
			if cmd.GroupID == "" {
				cmd.GroupID = groupID
			}
			if cmd.TestID == "" {
				cmd.TestID = tests[ti].ID
			}
		}
	}
}

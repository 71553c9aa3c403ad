// SPDX-License-Identifier: GPL-3.0-or-later
package forward

import (
	"fmt"
	"testing"

	"github.com/davrk/go-pop3-forward/domain/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestDeleteSpam(t *testing.T) {
	cfg := &configuration{}
	err := DeleteSpam()(cfg)

	assert.Equal(t, cfg, &configuration{DeleteSpam: true})
	assert.Nil(t, err)
}

func TestSpamThreshold(t *testing.T) {
	tests := []struct {
		name          string
		input         float64
		cfg           *configuration
		expected      *configuration
		expectedError error
	}{
		{"ok", 6.5, &configuration{}, &configuration{SpamThreshold: 6.5}, nil},
		{"zerovalidation", 0, &configuration{}, nil, fmt.Errorf("SpamThreshold must be greater than zero")},
		{"negativevalidation", -1, &configuration{}, nil, fmt.Errorf("SpamThreshold must be greater than zero")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := SpamThreshold(tc.input)(tc.cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, tc.cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestSubjectPrefix(t *testing.T) {
	cfg := &configuration{}
	err := SubjectPrefix("Fwd: ")(cfg)

	assert.Equal(t, cfg, &configuration{SubjectPrefix: "Fwd: "})
	assert.Nil(t, err)
}

func TestJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	journal := mocks.NewMockJournal(ctrl)

	cfg := &configuration{}
	err := Journal(journal)(cfg)
	assert.Nil(t, err)
	assert.Equal(t, journal, cfg.Journal)

	err = Journal(nil)(&configuration{})
	assert.EqualError(t, err, "Journal cannot be nil")
}

// SPDX-License-Identifier: GPL-3.0-or-later
package scoreapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/davrk/go-pop3-forward/domain"
	"github.com/davrk/go-pop3-forward/log"

	"github.com/sirupsen/logrus"
)

const ScoreTimeout = 15 * time.Second

// ScoreApi scores messages against a remote HTTP endpoint. Every failure,
// transport, status, parse or an explicit success=false, resolves to the
// fail-open verdict so classifier unavailability never blocks forwarding.
type ScoreApi struct {
	client *http.Client
	url    string

	l *logrus.Logger
}

func NewScoreApi(url string) *ScoreApi {
	return &ScoreApi{
		client: &http.Client{
			Timeout: ScoreTimeout,
		},
		url: url,
		l:   log.Logger(log.LOG_CLASSIFIER),
	}
}

type checkRequest struct {
	Email   string `json:"email"`
	Options string `json:"options"`
}

type checkResponse struct {
	Success bool   `json:"success"`
	Score   string `json:"score"`
}

func (s *ScoreApi) Check(rawMail []byte) *domain.SpamVerdict {
	score, err := s.score(rawMail)
	if err != nil {
		s.l.WithField("error", err).Warn("Could not score message, failing open")
		return &domain.SpamVerdict{Score: 0, Ok: false}
	}

	s.l.WithField("score", score).Info("Scored message")
	return &domain.SpamVerdict{Score: score, Ok: true}
}

func (s *ScoreApi) score(rawMail []byte) (float64, error) {
	body, err := json.Marshal(checkRequest{
		Email:   string(rawMail),
		Options: "short",
	})
	if err != nil {
		return 0, fmt.Errorf("could not serialize check request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("could not create check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("could not perform check request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d from scoring endpoint, expected 200", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("could not read scoring response: %w", err)
	}

	checkResponse := &checkResponse{}
	err = json.Unmarshal(respBody, checkResponse)
	if err != nil {
		return 0, fmt.Errorf("could not deserialize scoring response: %w", err)
	}

	if !checkResponse.Success {
		return 0, fmt.Errorf("scoring endpoint reported success=false")
	}

	score, err := strconv.ParseFloat(checkResponse.Score, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse score %q: %w", checkResponse.Score, err)
	}

	return score, nil
}

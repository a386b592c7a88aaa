package models

import (
	"encoding/json"
	"errors"
	"time"
)

// Activity type constants
const (
	ActivityBookAdded      = "book_added"
	ActivityBookDeleted    = "book_deleted"
	ActivityVotingComplete = "voting_complete"
	ActivityVoterExcluded  = "voter_excluded"
	ActivityVoterIncluded  = "voter_included"
	ActivityResultsPeeked  = "results_peeked"
)

// Request types

type CreatePollRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type AddBookRequest struct {
	Title   string `json:"title" validate:"required,max=300"`
	Author  string `json:"author" validate:"required,max=200"`
	AddedBy string `json:"added_by" validate:"required,max=100"`
}

// rankings: book IDs, most preferred first
type SubmitVoteRequest struct {
	VoterName string   `json:"voter_name" validate:"required,max=100"`
	Rankings  []string `json:"rankings"`
}

type ToggleExcludeRequest struct {
	VoterSessionID string `json:"voter_session_id" validate:"required"`
	ActorName      string `json:"actor_name" validate:"required,max=100"`
}

type PeekRequest struct {
	ActorName string `json:"actor_name" validate:"required,max=100"`
}

// Response types

type ResultEntry struct {
	Book        Book   `json:"book"`
	WorstDefeat int    `json:"worst_defeat"`
	Rank        int    `json:"rank"`
	Summary     string `json:"summary"`
}

type ResultsResponse struct {
	PollID        string        `json:"poll_id"`
	VoterCount    int           `json:"voter_count"`
	ExcludedCount int           `json:"excluded_count"`
	Results       []ResultEntry `json:"results"`
}

type ActivityEntry struct {
	Activity
	Text string `json:"text"`
	Ago  string `json:"ago"`
}

type ActivityResponse struct {
	PollID     string          `json:"poll_id"`
	Activities []ActivityEntry `json:"activities"`
}

// Domain types

type Book struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Author  string    `json:"author"`
	AddedBy string    `json:"added_by"`
	AddedAt time.Time `json:"added_at"`
}

// SubmissionStatus is either Draft or Completed.
type SubmissionStatus interface {
	isSubmissionStatus()
}

// Draft is a ranking that has not been locked in and is never tallied.
type Draft struct{}

// Completed is a locked-in ranking. Excluded ones are kept but not tallied.
type Completed struct {
	At       time.Time
	Excluded bool
}

func (Draft) isSubmissionStatus()     {}
func (Completed) isSubmissionStatus() {}

type Voter struct {
	Name      string
	SessionID string
	Rankings  []string
	Status    SubmissionStatus
}

// voterJSON is the flat wire shape of a Voter.
type voterJSON struct {
	Name        string     `json:"name"`
	SessionID   string     `json:"session_id,omitempty"`
	Rankings    []string   `json:"rankings"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Excluded    *bool      `json:"excluded,omitempty"`
}

func (v Voter) MarshalJSON() ([]byte, error) {
	out := voterJSON{
		Name:      v.Name,
		SessionID: v.SessionID,
		Rankings:  v.Rankings,
	}
	if out.Rankings == nil {
		out.Rankings = []string{}
	}
	if c, ok := v.Status.(Completed); ok {
		at := c.At
		excluded := c.Excluded
		out.CompletedAt = &at
		out.Excluded = &excluded
	}
	return json.Marshal(out)
}

func (v *Voter) UnmarshalJSON(data []byte) error {
	var in voterJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	v.Name = in.Name
	v.SessionID = in.SessionID
	v.Rankings = in.Rankings
	if in.CompletedAt == nil {
		if in.Excluded != nil && *in.Excluded {
			return errors.New("voter: excluded without completed_at")
		}
		v.Status = Draft{}
		return nil
	}
	c := Completed{At: *in.CompletedAt}
	if in.Excluded != nil {
		c.Excluded = *in.Excluded
	}
	v.Status = c
	return nil
}

// IsCompleted reports whether the voter has locked in their ranking.
func (v Voter) IsCompleted() bool {
	_, ok := v.Status.(Completed)
	return ok
}

// Tallyable reports whether the voter's ranking counts toward results.
func (v Voter) Tallyable() bool {
	switch s := v.Status.(type) {
	case Completed:
		return !s.Excluded
	default:
		return false
	}
}

// Ranks reports whether bookID appears in the voter's ranking.
func (v Voter) Ranks(bookID string) bool {
	for _, id := range v.Rankings {
		if id == bookID {
			return true
		}
	}
	return false
}

type Activity struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Actor     string    `json:"actor"`
	Detail    string    `json:"detail,omitempty"`
}

type Poll struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	CreatedAt   time.Time  `json:"created_at"`
	Books       []Book     `json:"books"`
	Voters      []Voter    `json:"voters"`
	ActivityLog []Activity `json:"activity_log"`
}

// BookIndex returns the position of the book in the poll, or -1.
func (p *Poll) BookIndex(bookID string) int {
	for i, b := range p.Books {
		if b.ID == bookID {
			return i
		}
	}
	return -1
}

// TallyableVoters returns the voters whose rankings are counted.
func (p *Poll) TallyableVoters() []Voter {
	voters := []Voter{}
	for _, v := range p.Voters {
		if v.Tallyable() {
			voters = append(voters, v)
		}
	}
	return voters
}

// BookRanked reports whether any voter, draft or completed, has ranked the book.
func (p *Poll) BookRanked(bookID string) bool {
	for _, v := range p.Voters {
		if v.Ranks(bookID) {
			return true
		}
	}
	return false
}

func (p *Poll) Log(activityType, actor, detail string) {
	p.ActivityLog = append(p.ActivityLog, Activity{
		Timestamp: time.Now(),
		Type:      activityType,
		Actor:     actor,
		Detail:    detail,
	})
}

type Session struct {
	ID        string    `json:"id"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// RankedResult is one Ranking Engine output entry.
type RankedResult struct {
	Book        Book `json:"book"`
	WorstDefeat int  `json:"worst_defeat"`
	Rank        int  `json:"rank"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

package nbastats

import "github.com/preston-bernstein/nba-recap-service/internal/domain/boxscores"

// statsResponse is the envelope shared by every stats.nba.com endpoint.
type statsResponse struct {
	Resource   string                `json:"resource"`
	ResultSets []boxscores.ResultSet `json:"resultSets"`
}

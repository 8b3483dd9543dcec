package controllers

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simantaparida/featurevote/api/models"
	"github.com/simantaparida/featurevote/logging"
	"github.com/simantaparida/featurevote/storage"
	"github.com/sirupsen/logrus"
)

type VotingController struct {
	sessionsStorage storage.SessionStorage
	playersStorage  storage.PlayerStorage
	featuresStorage storage.FeatureStorage
	votesStorage    storage.VoteStorage

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewVotingController(sessionStorage storage.SessionStorage, playerStorage storage.PlayerStorage, featureStorage storage.FeatureStorage, voteStorage storage.VoteStorage) *VotingController {
	return &VotingController{
		sessionsStorage: sessionStorage,
		playersStorage:  playerStorage,
		featuresStorage: featureStorage,
		votesStorage:    voteStorage,
		locks:           make(map[string]*sync.Mutex),
	}
}

func (c *VotingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/session")

	group.POST("/:sessionId/vote", c.submitVotes)
	group.DELETE("/:sessionId/vote/:playerId", c.undoVotes)
	group.GET("/:sessionId/results", c.getResults)
}

// submitVotes godoc
// @Summary Submit a player's votes
// @Description Replaces the player's point allocation for the session and advances the session to results once every player has voted
// @Tags voting
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body models.SubmitVotesRequest true "Vote submission"
// @Success 200 {object} models.SubmitVotesResponse
// @Failure 400 {object} models.ErrorResponse "Invalid votes or session not accepting votes"
// @Failure 404 {object} models.ErrorResponse "Session or player not found"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/session/{sessionId}/vote [post]
func (c *VotingController) submitVotes(g *gin.Context) {
	start := time.Now()
	sessionID := g.Param("sessionId")
	log := requestLogger(g).WithField("session", sessionID)

	var req models.SubmitVotesRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	log = log.WithField("player", req.PlayerID)
	log.Infof("VOTE: submission received with %d entries", len(req.Votes))

	// Validation chain; first failure wins.
	if req.PlayerID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "Player ID is required"})
		return
	}
	if msg := models.ValidateVotes(req.Votes); msg != "" {
		log.Warnf("VOTE: rejected submission: %s", msg)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: msg})
		return
	}

	session, err := c.sessionsStorage.Get(g.Request.Context(), sessionID)
	if err != nil || session == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "Session not found"})
		return
	}
	if session.Status != string(models.StatusPlaying) {
		log.Warnf("VOTE: rejected submission, session status is %s", session.Status)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "Voting is not currently active for this session"})
		return
	}

	// Scoped lookup: a player id from another session must not pass.
	player, err := c.playersStorage.Get(g.Request.Context(), sessionID, req.PlayerID)
	if err != nil || player == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "Player not found in this session"})
		return
	}

	features, err := c.featuresStorage.ListBySession(g.Request.Context(), sessionID)
	if err != nil {
		log.Errorf("VOTE: failed to list features: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to verify features"})
		return
	}
	validFeatures := make(map[string]struct{}, len(features))
	for _, f := range features {
		validFeatures[f.ID] = struct{}{}
	}
	for _, v := range req.Votes {
		if _, ok := validFeatures[v.FeatureID]; !ok {
			log.Warnf("VOTE: rejected submission, feature %s does not belong to session", v.FeatureID)
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "One or more feature IDs are invalid"})
			return
		}
	}

	// Two overlapping replaces for the same player would interleave
	// their delete+insert pairs; serialize them per (session, player).
	unlock := c.lockPlayer(sessionID, req.PlayerID)
	defer unlock()

	deleteStart := time.Now()
	if err := c.votesStorage.DeleteByPlayer(g.Request.Context(), sessionID, req.PlayerID); err != nil {
		// Nothing was inserted yet; the previous votes are intact.
		log.Errorf("VOTE: failed to clear existing votes: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to clear existing votes"})
		return
	}
	log.Infof("VOTE: cleared existing votes in %s", time.Since(deleteStart))

	batch := buildVoteBatch(sessionID, req.PlayerID, req.Votes)
	if len(batch) > 0 {
		insertStart := time.Now()
		if err := c.votesStorage.PutBatch(g.Request.Context(), batch); err != nil {
			// The previous votes are already gone and the new ones did
			// not persist. The player has no recorded votes until they
			// resubmit.
			log.WithFields(logrus.Fields{"critical": true}).Errorf("VOTE: cleared previous votes but failed to record new ones: %v", err)
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to record votes. Please try again."})
			return
		}
		log.Infof("VOTE: recorded %d votes in %s", len(batch), time.Since(insertStart))
	} else {
		log.Infof("VOTE: no non-zero entries, submission cleared the player's votes")
	}

	// Best effort: the vote is already durable, a stalled transition
	// only delays the session from advancing.
	if err := c.advanceIfAllVoted(g.Request.Context(), sessionID); err != nil {
		log.Errorf("VOTE: failed to advance session after full participation: %v", err)
	}

	log.Infof("VOTE: submission completed in %s", time.Since(start))
	g.JSON(http.StatusOK, &models.SubmitVotesResponse{Success: true})
}

// buildVoteBatch keeps only positive allocations: a zero-point entry
// means "no vote" and is never persisted. Empty notes are stored as
// null.
func buildVoteBatch(sessionID, playerID string, entries []models.VoteEntry) []*storage.Vote {
	batch := make([]*storage.Vote, 0, len(entries))
	for _, entry := range entries {
		if entry.Points <= 0 {
			continue
		}
		var note *string
		if entry.Note != "" {
			n := entry.Note
			note = &n
		}
		batch = append(batch, &storage.Vote{
			SessionID: sessionID,
			SortKey:   storage.VoteSortKey(playerID, entry.FeatureID),
			PlayerID:  playerID,
			FeatureID: entry.FeatureID,
			Points:    entry.Points,
			Note:      note,
		})
	}
	return batch
}

// advanceIfAllVoted moves the session to results once every current
// player holds at least one vote. A session with zero players never
// advances.
func (c *VotingController) advanceIfAllVoted(ctx context.Context, sessionID string) error {
	players, err := c.playersStorage.ListBySession(ctx, sessionID)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		return nil
	}

	voted, err := c.votesStorage.ListVotedPlayers(ctx, sessionID)
	if err != nil {
		return err
	}
	votedSet := make(map[string]struct{}, len(voted))
	for _, id := range voted {
		votedSet[id] = struct{}{}
	}
	for _, p := range players {
		if _, ok := votedSet[p.ID]; !ok {
			return nil
		}
	}

	logging.Log.Infof("VOTE: all %d players voted, moving session %s to results", len(players), sessionID)
	return c.sessionsStorage.UpdateStatus(ctx, sessionID, string(models.StatusResults))
}

func (c *VotingController) lockPlayer(sessionID, playerID string) func() {
	key := sessionID + "/" + playerID
	c.locksMu.Lock()
	mu, ok := c.locks[key]
	if !ok {
		mu = &sync.Mutex{}
		c.locks[key] = mu
	}
	c.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// undoVotes godoc
// @Summary Clear a player's votes
// @Description Removes every vote the player holds in the session
// @Tags voting
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param playerId path string true "Player ID"
// @Success 200 {object} models.SubmitVotesResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/session/{sessionId}/vote/{playerId} [delete]
func (c *VotingController) undoVotes(g *gin.Context) {
	sessionID := g.Param("sessionId")
	playerID := g.Param("playerId")
	log := requestLogger(g).WithField("session", sessionID).WithField("player", playerID)

	session, err := c.sessionsStorage.Get(g.Request.Context(), sessionID)
	if err != nil || session == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "Session not found"})
		return
	}
	if session.Status != string(models.StatusPlaying) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "Voting is not currently active for this session"})
		return
	}
	player, err := c.playersStorage.Get(g.Request.Context(), sessionID, playerID)
	if err != nil || player == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "Player not found in this session"})
		return
	}

	unlock := c.lockPlayer(sessionID, playerID)
	defer unlock()

	if err := c.votesStorage.DeleteByPlayer(g.Request.Context(), sessionID, playerID); err != nil {
		log.Errorf("VOTE: failed to clear existing votes: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to clear existing votes"})
		return
	}

	log.Infof("VOTE: undo cleared votes for player")
	g.JSON(http.StatusOK, &models.SubmitVotesResponse{Success: true})
}

// getResults godoc
// @Summary Session results
// @Description Per-feature totals, ranking and consensus ratio
// @Tags voting
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.SessionResultsResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/session/{sessionId}/results [get]
func (c *VotingController) getResults(g *gin.Context) {
	sessionID := g.Param("sessionId")
	log := requestLogger(g).WithField("session", sessionID)

	session, err := c.sessionsStorage.Get(g.Request.Context(), sessionID)
	if err != nil || session == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "Session not found"})
		return
	}

	features, err := c.featuresStorage.ListBySession(g.Request.Context(), sessionID)
	if err != nil {
		log.Errorf("VOTE: failed to load features for results: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to load results"})
		return
	}
	players, err := c.playersStorage.ListBySession(g.Request.Context(), sessionID)
	if err != nil {
		log.Errorf("VOTE: failed to load players for results: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to load results"})
		return
	}
	votes, err := c.votesStorage.ListBySession(g.Request.Context(), sessionID)
	if err != nil {
		log.Errorf("VOTE: failed to load votes for results: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to load results"})
		return
	}

	totals := make(map[string]int, len(features))
	backers := make(map[string]int, len(features))
	for _, v := range votes {
		totals[v.FeatureID] += v.Points
		backers[v.FeatureID]++
	}

	results := make([]models.FeatureResult, 0, len(features))
	for _, f := range features {
		result := models.FeatureResult{
			FeatureID:   f.ID,
			Title:       f.Title,
			TotalPoints: totals[f.ID],
			Backers:     backers[f.ID],
		}
		if len(players) > 0 {
			result.Support = float64(backers[f.ID]) / float64(len(players))
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalPoints > results[j].TotalPoints
	})

	// Dense ranking, ties share a rank.
	rank := 0
	lastTotal := -1
	for i := range results {
		if results[i].TotalPoints != lastTotal {
			rank++
			lastTotal = results[i].TotalPoints
		}
		results[i].Rank = rank
	}

	g.JSON(http.StatusOK, &models.SessionResultsResponse{
		SessionID: sessionID,
		Status:    session.Status,
		Players:   len(players),
		Results:   results,
	})
}

// requestLogger attaches the optional client request id to every log
// line of a request. The header has no behavioral effect.
func requestLogger(g *gin.Context) *logrus.Entry {
	entry := logrus.NewEntry(logging.Log)
	if rid := g.GetHeader("X-Request-ID"); rid != "" {
		entry = entry.WithField("requestId", rid)
	}
	return entry
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/simantaparida/featurevote/api/models"
	"github.com/simantaparida/featurevote/logging"
	"github.com/simantaparida/featurevote/storage"
)

type SessionController struct {
	sessionsStorage storage.SessionStorage
	playersStorage  storage.PlayerStorage
	featuresStorage storage.FeatureStorage
}

func NewSessionController(sessionStorage storage.SessionStorage, playerStorage storage.PlayerStorage, featureStorage storage.FeatureStorage) *SessionController {
	return &SessionController{
		sessionsStorage: sessionStorage,
		playersStorage:  playerStorage,
		featuresStorage: featureStorage,
	}
}

func (c *SessionController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/session")

	group.POST("", c.create)
	group.GET("/:sessionId", c.get)
	group.POST("/:sessionId/join", c.join)
	group.POST("/:sessionId/start", c.start)
}

// create godoc
// @Summary Create a prioritization session
// @Description Creates a session with its candidate features and returns the shareable session id
// @Tags session
// @Accept json
// @Produce json
// @Param request body models.CreateSessionRequest true "Session definition"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/session [post]
func (c *SessionController) create(g *gin.Context) {
	var req models.CreateSessionRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.Title == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "Session title is required"})
		return
	}
	if len(req.Features) == 0 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "At least one feature is required"})
		return
	}
	for _, f := range req.Features {
		if f.Title == "" {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "Feature title is required"})
			return
		}
	}

	session := &storage.Session{
		ID:     c.generateShareCode(),
		Title:  req.Title,
		Status: string(models.StatusOpen),
	}
	if err := c.sessionsStorage.Put(g.Request.Context(), session); err != nil {
		logging.Log.Errorf("SESSION: failed to create session: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to create session"})
		return
	}

	features := make([]*storage.Feature, 0, len(req.Features))
	for _, entry := range req.Features {
		feature := &storage.Feature{
			SessionID:   session.ID,
			ID:          generateID(),
			Title:       entry.Title,
			Description: entry.Description,
		}
		if err := c.featuresStorage.Put(g.Request.Context(), feature); err != nil {
			logging.Log.Errorf("SESSION: failed to create feature for session %s: %v", session.ID, err)
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to create session"})
			return
		}
		features = append(features, feature)
	}

	logging.Log.Infof("SESSION: created session %s with %d features", session.ID, len(features))
	g.JSON(http.StatusOK, models.TransformSessionFromStorage(session, nil, features))
}

// get godoc
// @Summary Session state
// @Description Current status, players and features, for polling clients
// @Tags session
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.SessionResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/session/{sessionId} [get]
func (c *SessionController) get(g *gin.Context) {
	sessionID := g.Param("sessionId")

	session, err := c.sessionsStorage.Get(g.Request.Context(), sessionID)
	if err != nil || session == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "Session not found"})
		return
	}

	players, err := c.playersStorage.ListBySession(g.Request.Context(), sessionID)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to list players: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to load session"})
		return
	}
	features, err := c.featuresStorage.ListBySession(g.Request.Context(), sessionID)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to list features: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to load session"})
		return
	}

	g.JSON(http.StatusOK, models.TransformSessionFromStorage(session, players, features))
}

// join godoc
// @Summary Join a session
// @Description Registers a new player in the session and returns the player id
// @Tags session
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body models.JoinSessionRequest true "Player name"
// @Success 200 {object} models.PlayerResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/session/{sessionId}/join [post]
func (c *SessionController) join(g *gin.Context) {
	sessionID := g.Param("sessionId")

	var req models.JoinSessionRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.Name == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "Player name is required"})
		return
	}

	session, err := c.sessionsStorage.Get(g.Request.Context(), sessionID)
	if err != nil || session == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "Session not found"})
		return
	}
	if session.Status == string(models.StatusResults) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "Session is no longer accepting players"})
		return
	}

	player := &storage.Player{
		SessionID: sessionID,
		ID:        generateID(),
		Name:      req.Name,
	}
	if err := c.playersStorage.Put(g.Request.Context(), player); err != nil {
		logging.Log.Errorf("SESSION: failed to add player to session %s: %v", sessionID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to join session"})
		return
	}

	logging.Log.Infof("SESSION: player %s joined session %s", player.ID, sessionID)
	g.JSON(http.StatusOK, models.TransformPlayerFromStorage(player))
}

// start godoc
// @Summary Start voting
// @Description Host action moving the session from open to playing
// @Tags session
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/session/{sessionId}/start [post]
func (c *SessionController) start(g *gin.Context) {
	sessionID := g.Param("sessionId")

	session, err := c.sessionsStorage.Get(g.Request.Context(), sessionID)
	if err != nil || session == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "Session not found"})
		return
	}
	if session.Status != string(models.StatusOpen) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "Session has already started"})
		return
	}

	if err := c.sessionsStorage.UpdateStatus(g.Request.Context(), sessionID, string(models.StatusPlaying)); err != nil {
		logging.Log.Errorf("SESSION: failed to start session %s: %v", sessionID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "Failed to start session"})
		return
	}
	session.Status = string(models.StatusPlaying)

	logging.Log.Infof("SESSION: session %s started", sessionID)
	g.JSON(http.StatusOK, models.TransformSessionFromStorage(session, nil, nil))
}

// generateShareCode makes the short uppercase id players type in to
// join.
func (c *SessionController) generateShareCode() string {
	return gonanoid.MustGenerate(models.Alphabet, 8)
}

func generateID() string {
	return gonanoid.Must(12)
}

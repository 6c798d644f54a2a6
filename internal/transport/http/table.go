package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rayou-Ryan/Puissance-4/internal/domain"
	"github.com/Rayou-Ryan/Puissance-4/internal/locale"
	"github.com/Rayou-Ryan/Puissance-4/internal/service/game"
	"github.com/Rayou-Ryan/Puissance-4/internal/transport/http/middleware"
	"github.com/Rayou-Ryan/Puissance-4/pkg/auth"
	"github.com/Rayou-Ryan/Puissance-4/pkg/httputil"
	"github.com/Rayou-Ryan/Puissance-4/pkg/useragent"
)

// DefaultsFunc returns the setup a blank form stands for, in the given language.
type DefaultsFunc func(tr *locale.Translator) domain.GameConfig

type TableHandler struct {
	Tables        *game.TableManager
	Tokens        *auth.TokenIssuer
	Defaults      DefaultsFunc
	DefaultLocale string
	MaxBoardSize  int
	IsProduction  bool
	logger        *zap.Logger
}

func NewTableHandler(tables *game.TableManager, tokens *auth.TokenIssuer, defaults DefaultsFunc, defaultLocale string, maxBoardSize int, isProduction bool, logger *zap.Logger) *TableHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TableHandler{
		Tables:        tables,
		Tokens:        tokens,
		Defaults:      defaults,
		DefaultLocale: defaultLocale,
		MaxBoardSize:  maxBoardSize,
		IsProduction:  isProduction,
		logger:        logger.Named("http"),
	}
}

// configRequest mirrors the setup form. Blank fields keep their defaults.
type configRequest struct {
	Rows         int    `json:"rows" binding:"omitempty,min=1"`
	Cols         int    `json:"cols" binding:"omitempty,min=1"`
	Player1Color string `json:"player1Color" binding:"max=32"`
	Player2Color string `json:"player2Color" binding:"max=32"`
	Player1Label string `json:"player1Label" binding:"max=32"`
	Player2Label string `json:"player2Label" binding:"max=32"`
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

type createTableResponse struct {
	Token string     `json:"token"`
	State game.State `json:"state"`
}

// CreateTable opens a new table and hands the caller its token.
func (h *TableHandler) CreateTable(c *gin.Context) {
	var req configRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid configuration: " + err.Error()})
			return
		}
	}

	tr := h.translator(c)
	cfg, ok := h.gameConfig(c, req, h.Defaults(tr))
	if !ok {
		return
	}

	table, err := h.Tables.Create(cfg, tr)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.Tokens.Generate(table.ID)
	if err != nil {
		h.logger.Error("failed to sign table token", zap.Error(err))
		_ = h.Tables.Remove(table.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create table"})
		return
	}

	h.logger.Debug("table opened",
		zap.String("table_id", table.ID),
		zap.String("client", useragent.Describe(c.Request)),
		zap.String("ip", useragent.ClientIP(c.Request)),
	)
	httputil.SetTableCookie(c.Writer, token, h.Tokens.TTL(), h.IsProduction)
	c.JSON(http.StatusCreated, createTableResponse{Token: token, State: table.State()})
}

func (h *TableHandler) GetTable(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentTable(c).State())
}

// PlayMove only forwards integer columns that exist on the board.
func (h *TableHandler) PlayMove(c *gin.Context) {
	table := middleware.CurrentTable(c)

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A column number is required"})
		return
	}
	if *req.Column < 0 || *req.Column >= table.Columns() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Column out of range"})
		return
	}

	state, err := table.Play(*req.Column)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *TableHandler) Undo(c *gin.Context) {
	state, err := middleware.CurrentTable(c).Undo()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *TableHandler) Reset(c *gin.Context) {
	state, err := middleware.CurrentTable(c).Reset()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *TableHandler) RequestReconfigure(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentTable(c).RequestReconfigure())
}

// Configure builds a fresh engine for the table. Blank fields fall back to
// the table's current setup.
func (h *TableHandler) Configure(c *gin.Context) {
	table := middleware.CurrentTable(c)

	var req configRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid configuration: " + err.Error()})
		return
	}

	cfg, ok := h.gameConfig(c, req, table.Config())
	if !ok {
		return
	}

	state, err := table.Configure(cfg)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *TableHandler) DeleteTable(c *gin.Context) {
	table := middleware.CurrentTable(c)
	if err := h.Tables.Remove(table.ID); err != nil {
		writeError(c, err)
		return
	}
	httputil.ClearTableCookie(c.Writer)
	c.Status(http.StatusNoContent)
}

func (h *TableHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "tables": h.Tables.Count()})
}

func (h *TableHandler) translator(c *gin.Context) *locale.Translator {
	if lang := c.Query("lang"); lang != "" {
		return locale.New(lang)
	}
	if accept := c.GetHeader("Accept-Language"); accept != "" {
		return locale.New(accept)
	}
	return locale.New(h.DefaultLocale)
}

// gameConfig merges the request over base and enforces the size limit of
// this server. It writes the error response itself when it returns false.
func (h *TableHandler) gameConfig(c *gin.Context, req configRequest, base domain.GameConfig) (domain.GameConfig, bool) {
	cfg := base
	if req.Rows != 0 {
		cfg.Rows = req.Rows
	}
	if req.Cols != 0 {
		cfg.Cols = req.Cols
	}
	if req.Player1Color != "" {
		cfg.Players[0].Color = req.Player1Color
	}
	if req.Player2Color != "" {
		cfg.Players[1].Color = req.Player2Color
	}
	if req.Player1Label != "" {
		cfg.Players[0].Label = req.Player1Label
	}
	if req.Player2Label != "" {
		cfg.Players[1].Label = req.Player2Label
	}

	if cfg.Rows > h.MaxBoardSize || cfg.Cols > h.MaxBoardSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Board is too large", "max": h.MaxBoardSize})
		return cfg, false
	}
	return cfg, true
}

func writeError(c *gin.Context, err error) {
	var cfgErr *domain.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": cfgErr.Reason})
	case errors.Is(err, domain.ErrInvalidColumn):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrColumnFull),
		errors.Is(err, domain.ErrGameOver),
		errors.Is(err, domain.ErrNoHistory),
		errors.Is(err, game.ErrConfiguring):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrTableNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

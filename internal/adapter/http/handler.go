package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"petverse/internal/app/adopt"
	"petverse/internal/app/care"
	"petverse/internal/app/catchup"
	"petverse/internal/app/hatch"
	"petverse/internal/app/minigame"
	"petverse/internal/app/ports"
	"petverse/internal/app/replay"
	"petverse/internal/app/shop"
	"petverse/internal/app/sleep"
	"petverse/internal/app/status"
	"petverse/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	AdoptUC    adopt.UseCase
	StatusUC   status.UseCase
	CareUC     care.UseCase
	SleepUC    sleep.StartUseCase
	WakeUC     sleep.WakeUseCase
	HatchUC    hatch.UseCase
	ShopUC     shop.UseCase
	MinigameUC minigame.UseCase
	CatchupUC  catchup.UseCase
	ReplayUC   replay.UseCase
	Log        ports.NotificationLog
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	p := s.Group("/api/pet")
	p.POST("/adopt", h.adopt)
	p.POST("/status", h.status)
	p.POST("/care", h.care)
	p.POST("/sleep", h.sleep)
	p.POST("/wake", h.wake)
	p.POST("/hatch", h.hatch)
	p.POST("/catchup", h.catchup)
	p.POST("/shop/buy", h.shopBuy)
	p.GET("/shop/catalog", h.shopCatalog)
	p.POST("/minigame/reward", h.minigameReward)
	p.GET("/replay", h.replay)

	s.GET("/api/notifications", h.notifications)
	s.GET("/ops/kpi", h.kpi)
}

type adoptRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Color   string `json:"color"`
}

type petRequest struct {
	PetID string `json:"pet_id"`
}

type careRequest struct {
	PetID  string `json:"pet_id"`
	Action string `json:"action"`
}

type buyRequest struct {
	PetID string `json:"pet_id"`
	Item  string `json:"item"`
}

type rewardRequest struct {
	PetID  string     `json:"pet_id"`
	Game   string     `json:"game"`
	Reward pet.Reward `json:"reward"`
}

func (h Handler) adopt(c context.Context, ctx *app.RequestContext) {
	var body adoptRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.AdoptUC.Execute(c, adopt.Request{
		Name:    body.Name,
		Species: pet.Species(body.Species),
		Color:   pet.ColorVariant(body.Color),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	var body petRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.StatusUC.Execute(c, status.Request{PetID: body.PetID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) care(c context.Context, ctx *app.RequestContext) {
	var body careRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CareUC.Execute(c, care.Request{
		PetID:  body.PetID,
		Action: pet.CareAction(body.Action),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) sleep(c context.Context, ctx *app.RequestContext) {
	var body petRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.SleepUC.Execute(c, sleep.Request{PetID: body.PetID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) wake(c context.Context, ctx *app.RequestContext) {
	var body petRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.WakeUC.Execute(c, sleep.Request{PetID: body.PetID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) hatch(c context.Context, ctx *app.RequestContext) {
	var body petRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.HatchUC.Execute(c, hatch.Request{PetID: body.PetID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) catchup(c context.Context, ctx *app.RequestContext) {
	var body petRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CatchupUC.Execute(c, catchup.Request{PetID: body.PetID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) shopBuy(c context.Context, ctx *app.RequestContext) {
	var body buyRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ShopUC.Buy(c, shop.BuyRequest{
		PetID: body.PetID,
		Item:  pet.ItemID(body.Item),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) shopCatalog(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.ShopUC.Catalog())
}

func (h Handler) minigameReward(c context.Context, ctx *app.RequestContext) {
	var body rewardRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.MinigameUC.Execute(c, minigame.Request{
		PetID:  body.PetID,
		Game:   body.Game,
		Reward: body.Reward,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		PetID: string(ctx.Query("pet_id")),
		Limit: limit,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) notifications(c context.Context, ctx *app.RequestContext) {
	if h.Log == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "notification log not configured")
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	items, err := h.Log.Recent(c, string(ctx.Query("pet_id")), limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"notifications": items})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, pet.ErrPetDeceased):
		writeErrorBody(ctx, consts.StatusConflict, "pet_deceased", err.Error())
	case errors.Is(err, pet.ErrNotHatched):
		writeErrorBody(ctx, consts.StatusConflict, "not_hatched", err.Error())
	case errors.Is(err, pet.ErrAlreadyHatched):
		writeErrorBody(ctx, consts.StatusConflict, "already_hatched", err.Error())
	case errors.Is(err, pet.ErrAlreadySleeping):
		writeErrorBody(ctx, consts.StatusConflict, "already_sleeping", err.Error())
	case errors.Is(err, pet.ErrLowEnergy):
		writeErrorBody(ctx, consts.StatusConflict, "low_energy", err.Error())
	case errors.Is(err, pet.ErrNoFood):
		writeErrorBody(ctx, consts.StatusConflict, "no_food", err.Error())
	case errors.Is(err, pet.ErrNoSoap):
		writeErrorBody(ctx, consts.StatusConflict, "no_soap", err.Error())
	case errors.Is(err, pet.ErrNoMedicine):
		writeErrorBody(ctx, consts.StatusConflict, "no_medicine", err.Error())
	case errors.Is(err, pet.ErrNoTreats):
		writeErrorBody(ctx, consts.StatusConflict, "no_treats", err.Error())
	case errors.Is(err, pet.ErrInsufficientCoins):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_coins", err.Error())
	case errors.Is(err, pet.ErrUnknownItem):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_item", err.Error())
	case errors.Is(err, pet.ErrUnknownCareAction):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_care_action", err.Error())
	case errors.Is(err, pet.ErrInvalidUnits):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_units", err.Error())
	case errors.Is(err, adopt.ErrInvalidRequest),
		errors.Is(err, care.ErrInvalidRequest),
		errors.Is(err, catchup.ErrInvalidRequest),
		errors.Is(err, hatch.ErrInvalidRequest),
		errors.Is(err, minigame.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, shop.ErrInvalidRequest),
		errors.Is(err, sleep.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

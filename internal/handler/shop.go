package handler

import (
	"net/http"

	"github.com/osse101/MuForge_Go/internal/game"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// ShopBuyRequest is the body of /shop/buy
type ShopBuyRequest struct {
	SessionID string `json:"session_id" validate:"required,sessionid"`
	ItemName  string `json:"item_name" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// HandleShopBuy buys one unit of an item
// @Summary Buy an item
// @Tags shop
// @Accept json
// @Produce json
// @Param request body ShopBuyRequest true "Purchase"
// @Success 200 {object} game.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shop/buy [post]
func HandleShopBuy(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ShopBuyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Shop buy"); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()), "session_id", req.SessionID, "item", req.ItemName)

		result, err := svc.Purchase(r.Context(), req.SessionID, req.ItemName)
		if err != nil {
			respondServiceError(w, r, "Shop buy", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleShopPrices lists the shop
// @Summary Shop prices
// @Tags shop
// @Produce json
// @Success 200 {array} economy.PriceEntry
// @Router /shop/prices [get]
func HandleShopPrices(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.GetPrices(r.Context()))
	}
}

// HandleUnlock pays to unlock a location
// @Summary Unlock a location
// @Tags shop
// @Produce json
// @Param session_id query string true "Session ID"
// @Param location_id query string true "Location ID"
// @Success 200 {object} game.UnlockResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /unlock [post]
func HandleUnlock(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := GetQueryParam(r, w, QueryParamSessionID)
		if !ok {
			return
		}
		locationID, ok := GetQueryParam(r, w, QueryParamLocationID)
		if !ok {
			return
		}

		result, err := svc.UnlockLocation(r.Context(), sessionID, locationID)
		if err != nil {
			respondServiceError(w, r, "Unlock", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

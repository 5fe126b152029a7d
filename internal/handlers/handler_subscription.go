package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

func newSubscriptionHandler(ss portssvc.SubscriptionSvcFacade) *subscriptionHandler {
	return &subscriptionHandler{subscriptionService: ss}
}

func registerSubscriptionRoutes(rg *gin.RouterGroup, deps routeDeps) {
	h := newSubscriptionHandler(deps.services.Subscription)

	subscriptions := rg.Group("/subscriptions", deps.auth)
	{
		subscriptions.POST("/toggleSubscription/:channelId", h.toggleSubscription)
		subscriptions.GET("/getChannelSubscribers/:channelId", h.listSubscribers)
		subscriptions.GET("/getChannelsSubscribedTo/:subscriberId", h.listSubscribedChannels)
	}
}

// toggleSubscription godoc
// @Summary Subscribe to or unsubscribe from a channel
// @Tags subscriptions
// @Produce json
// @Param channelId path string true "Channel (user) ID"
// @Success 200 {object} dto.APIResponse{data=domain.Subscription}
// @Failure 400 {object} dto.APIResponse "Cannot subscribe to yourself"
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /subscriptions/toggleSubscription/{channelId} [post]
func (h *subscriptionHandler) toggleSubscription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	channelID, ok := pathID(c, "channelId")
	if !ok {
		return
	}
	sub, err := h.subscriptionService.ToggleSubscription(c.Request.Context(), userID, channelID)
	if err != nil {
		respondError(c, err)
		return
	}
	if sub == nil {
		respondOK(c, http.StatusOK, gin.H{}, "Unsubscribed successfully")
		return
	}
	respondOK(c, http.StatusOK, sub, "Subscribed successfully")
}

// listSubscribers godoc
// @Summary Subscribers of a channel
// @Tags subscriptions
// @Produce json
// @Param channelId path string true "Channel (user) ID"
// @Success 200 {object} dto.APIResponse{data=[]domain.Subscription}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /subscriptions/getChannelSubscribers/{channelId} [get]
func (h *subscriptionHandler) listSubscribers(c *gin.Context) {
	channelID, ok := pathID(c, "channelId")
	if !ok {
		return
	}
	subs, err := h.subscriptionService.GetChannelSubscribers(c.Request.Context(), channelID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, subs, "Subscribers fetched successfully")
}

// listSubscribedChannels godoc
// @Summary Channels a user subscribes to
// @Tags subscriptions
// @Produce json
// @Param subscriberId path string true "Subscriber (user) ID"
// @Success 200 {object} dto.APIResponse{data=[]domain.Subscription}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /subscriptions/getChannelsSubscribedTo/{subscriberId} [get]
func (h *subscriptionHandler) listSubscribedChannels(c *gin.Context) {
	subscriberID, ok := pathID(c, "subscriberId")
	if !ok {
		return
	}
	subs, err := h.subscriptionService.GetSubscribedChannels(c.Request.Context(), subscriberID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, subs, "Subscribed channels fetched successfully")
}

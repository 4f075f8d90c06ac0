package router

import (
	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// notifyRoute binds a partner callback path to the event it reports
type notifyRoute struct {
	path     string
	kind     delivery.EventKind
	allowPut bool
}

var notifyRoutes = []notifyRoute{
	{path: "/notifyTaskCreatedUrl/:taskId", kind: delivery.EventTaskCreated},
	{path: "/notifyTaskAssignedUrl/:taskId", kind: delivery.EventTaskAssigned, allowPut: true},
	{path: "/notifyTaskOnTheWayUrl/:taskId", kind: delivery.EventTaskOnTheWay, allowPut: true},
	{path: "/notifyTaskCheckedInUrl/:taskId", kind: delivery.EventTaskCheckedIn},
	{path: "/notifyArrivedOnLocationUrl/:taskId", kind: delivery.EventTaskArrived},
	{path: "/notifyTaskDoneUrl/:taskId", kind: delivery.EventTaskDone},
	{path: "/notifyTaskAcceptedUrl/:taskId", kind: delivery.EventTaskAccepted},
	{path: "/notifyTaskCancelledUrl/:taskId", kind: delivery.EventTaskCancelled},
	{path: "/notifyTaskRejectedUrl/:taskId", kind: delivery.EventTaskRejected},
	{path: "/notifyLateUrl/:taskId", kind: delivery.EventTaskLate},
}

// NewBringgGroup builds the partner callback and task lookup routes under /bringg
func NewBringgGroup(webhooks *handler.DeliveryWebhookHandler, tasks *handler.TaskHandler) *DomainGroup {
	group := NewDomainGroup("/bringg")
	group.GET("/get/:taskId", tasks.GetTask)

	for _, route := range notifyRoutes {
		h := webhooks.Notify(route.kind)
		group.POST(route.path, h)
		if route.allowPut {
			group.PUT(route.path, h)
		}
	}
	return group
}

// NewPOSGroup builds the POS request routes under /pos, behind middleware
func NewPOSGroup(orders *handler.POSOrderHandler, middleware ...gin.HandlerFunc) *DomainGroup {
	group := NewDomainGroup("/pos").Use(middleware...)
	group.GET("/orders/:id/request", orders.GetRequest)
	return group
}

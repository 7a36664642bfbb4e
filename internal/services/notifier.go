package services

import (
	"fmt"
	"strings"

	"poshstore/internal/models"
	"poshstore/internal/repositories"
	"poshstore/pkg/mailer"
	"poshstore/pkg/metrics"
	"poshstore/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

// Notifier dispatches best-effort order notifications: transactional email
// to the buyer and operators, and an event on the message queue. Dispatch
// runs outside the request path; failures are logged and counted, never
// surfaced to the caller. The order's durability is the success criterion,
// not the email's delivery.
type Notifier struct {
	mailer      *mailer.Client
	mq          *rabbitmq.Client
	userRepo    repositories.UserRepository
	adminEmails []string
	log         *logrus.Logger
	metrics     *metrics.StoreMetrics
}

// NewNotifier creates a new Notifier. Both mailer and mq may be nil; the
// corresponding channel is then skipped.
func NewNotifier(
	mailClient *mailer.Client,
	mqClient *rabbitmq.Client,
	userRepo repositories.UserRepository,
	adminEmails []string,
	log *logrus.Logger,
	storeMetrics *metrics.StoreMetrics,
) *Notifier {
	return &Notifier{
		mailer:      mailClient,
		mq:          mqClient,
		userRepo:    userRepo,
		adminEmails: adminEmails,
		log:         log,
		metrics:     storeMetrics,
	}
}

// OrderCreated notifies the buyer and operators about a freshly placed order.
func (n *Notifier) OrderCreated(order *models.Order) {
	o := *order
	go func() {
		n.publishEvent(rabbitmq.EventOrderCreated, &o)

		user := n.lookupBuyer(&o)
		if user != nil {
			subject := fmt.Sprintf("Your Order Confirmation - %s | Posh Choice Store", o.OrderNumber)
			n.sendMail([]string{user.Email}, subject, buyerOrderCreatedHTML(&o, user))
		}
		if len(n.adminEmails) > 0 {
			subject := fmt.Sprintf("New Order Placed - %s", o.OrderNumber)
			n.sendMail(n.adminEmails, subject, operatorOrderHTML(&o, "A new order has been placed."))
		}
	}()
}

// OrderStatusUpdated notifies about a status transition.
func (n *Notifier) OrderStatusUpdated(order *models.Order) {
	o := *order
	go func() {
		n.publishEvent(rabbitmq.EventOrderStatusUpdated, &o)

		user := n.lookupBuyer(&o)
		if user != nil {
			subject := fmt.Sprintf("Order Status Updated - %s | %s", o.OrderNumber, o.Status)
			n.sendMail([]string{user.Email}, subject, buyerStatusUpdatedHTML(&o, user))
		}
		if len(n.adminEmails) > 0 {
			subject := fmt.Sprintf("Order Status Updated - %s | %s", o.OrderNumber, o.Status)
			n.sendMail(n.adminEmails, subject, operatorOrderHTML(&o, fmt.Sprintf("Order status changed to %s.", o.Status)))
		}
	}()
}

// PaymentStatusUpdated notifies about a payment status change.
func (n *Notifier) PaymentStatusUpdated(order *models.Order) {
	o := *order
	go func() {
		n.publishEvent(rabbitmq.EventOrderPaymentUpdate, &o)

		user := n.lookupBuyer(&o)
		if user != nil {
			subject := fmt.Sprintf("Payment Status Updated - %s | %s", o.OrderNumber, o.PaymentStatus)
			n.sendMail([]string{user.Email}, subject, buyerStatusUpdatedHTML(&o, user))
		}
	}()
}

func (n *Notifier) lookupBuyer(order *models.Order) *models.User {
	if n.userRepo == nil || order.UserID == "" {
		return nil
	}
	user, err := n.userRepo.GetByID(order.UserID)
	if err != nil {
		n.log.WithError(err).WithField("order", order.OrderNumber).Warn("failed to resolve buyer for notification")
		return nil
	}
	return user
}

func (n *Notifier) sendMail(to []string, subject, html string) {
	if n.mailer == nil {
		return
	}
	if err := n.mailer.Send(to, subject, html); err != nil {
		n.log.WithError(err).WithFields(logrus.Fields{
			"subject":    subject,
			"recipients": len(to),
		}).Warn("order email notification failed")
		n.count("email", "failure")
		return
	}
	n.count("email", "success")
}

func (n *Notifier) publishEvent(event string, order *models.Order) {
	if n.mq == nil {
		return
	}
	payload := map[string]interface{}{
		"orderId":       order.ID,
		"orderNumber":   order.OrderNumber,
		"userId":        order.UserID,
		"status":        order.Status,
		"paymentStatus": order.PaymentStatus,
		"total":         order.TotalPrice,
	}
	if err := n.mq.PublishOrderEvent(event, payload); err != nil {
		n.log.WithError(err).WithField("order", order.OrderNumber).Warn("failed to publish order event")
		n.count("amqp", "failure")
		return
	}
	n.count("amqp", "success")
}

func (n *Notifier) count(channel, outcome string) {
	if n.metrics != nil {
		n.metrics.Notifications.WithLabelValues(channel, outcome).Inc()
	}
}

func buyerOrderCreatedHTML(order *models.Order, user *models.User) string {
	var items strings.Builder
	for _, item := range order.OrderItems {
		fmt.Fprintf(&items, "<li>%s x %d (₦%.2f)</li>", item.Name, item.Quantity, item.Price)
	}
	return fmt.Sprintf(`
		<h2>Thank you for your order, %s!</h2>
		<p>We have received your order <b>%s</b> and are currently processing it.</p>
		<p><strong>Status:</strong> %s<br/>
		<strong>Total Amount:</strong> ₦%.2f<br/>
		<strong>Payment Method:</strong> %s</p>
		<h4>Items Ordered</h4>
		<ul>%s</ul>
		<p>%s, %s, %s</p>
		<p>Thank you for shopping with us!<br/>Posh Choice Store</p>`,
		user.Name, order.OrderNumber, order.Status, order.TotalPrice, order.PaymentMethod,
		items.String(),
		order.ShippingAddress.Address1, order.ShippingAddress.City, order.ShippingAddress.Country)
}

func buyerStatusUpdatedHTML(order *models.Order, user *models.User) string {
	return fmt.Sprintf(`
		<h3>Hi %s</h3>
		<p>The status of your order %s has been updated.</p>
		<p><strong>Current Status:</strong> %s<br/>
		<strong>Payment Status:</strong> %s<br/>
		<strong>Order Total:</strong> ₦%.2f</p>
		<p>Warm regards,<br/>Posh Choice Store</p>`,
		user.Name, order.OrderNumber, order.Status, order.PaymentStatus, order.TotalPrice)
}

func operatorOrderHTML(order *models.Order, headline string) string {
	return fmt.Sprintf(`
		<h2>%s</h2>
		<p><strong>Order Number:</strong> %s<br/>
		<strong>Status:</strong> %s<br/>
		<strong>Payment Method:</strong> %s<br/>
		<strong>Total:</strong> ₦%.2f</p>`,
		headline, order.OrderNumber, order.Status, order.PaymentMethod, order.TotalPrice)
}

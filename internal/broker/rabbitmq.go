package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/streadway/amqp"
	"github.com/wb-go/wbf/logger"
)

// channel is the subset of *amqp.Channel used for publishing.
type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// session is one live connection with its publishing channel.
type session struct {
	ch     channel
	conn   io.Closer
	closed <-chan *amqp.Error
}

func (s *session) close() error {
	err := s.ch.Close()
	if s.conn != nil {
		if cerr := s.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

var errPublisherClosed = errors.New("rabbitmq publisher closed")

// RabbitPublisher sends booking events to a durable queue. A lost
// connection is noticed via NotifyClose and re-dialed on the next Publish.
type RabbitPublisher struct {
	mu       sync.Mutex
	sess     *session
	dial     func() (*session, error)
	queue    string
	done     chan struct{}
	isClosed bool
	logger   logger.Logger
}

func NewRabbitPublisher(url, queue string, log logger.Logger) (*RabbitPublisher, error) {
	p := &RabbitPublisher{
		dial:   func() (*session, error) { return dialRabbit(url, queue) },
		queue:  queue,
		done:   make(chan struct{}),
		logger: log,
	}

	sess, err := p.dial()
	if err != nil {
		return nil, err
	}
	p.attach(sess)

	log.Info("rabbitmq publisher ready", logger.String("queue", queue))
	return p, nil
}

func dialRabbit(url, queue string) (*session, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return &session{
		ch:     ch,
		conn:   conn,
		closed: conn.NotifyClose(make(chan *amqp.Error, 1)),
	}, nil
}

// attach must be called with mu held or before p is shared.
func (p *RabbitPublisher) attach(sess *session) {
	p.sess = sess
	go p.watch(sess)
}

func (p *RabbitPublisher) watch(sess *session) {
	select {
	case amqpErr, ok := <-sess.closed:
		p.mu.Lock()
		if p.sess == sess {
			p.sess = nil
		}
		p.mu.Unlock()

		// закрытие без ошибки означает штатный Close
		if ok && amqpErr != nil {
			p.logger.LogAttrs(context.Background(), logger.WarnLevel, "rabbitmq connection lost",
				logger.String("queue", p.queue),
				logger.Int("code", amqpErr.Code),
				logger.String("reason", amqpErr.Reason),
			)
		}
	case <-p.done:
	}
}

// connected returns the live session, dialing a new one if the previous was lost.
func (p *RabbitPublisher) connected(ctx context.Context) (*session, error) {
	if p.isClosed {
		return nil, errPublisherClosed
	}
	if p.sess != nil {
		return p.sess, nil
	}

	sess, err := p.dial()
	if err != nil {
		return nil, fmt.Errorf("reconnect: %w", err)
	}
	p.attach(sess)

	p.logger.LogAttrs(ctx, logger.InfoLevel, "rabbitmq reconnected", logger.String("queue", p.queue))
	return sess, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, event domain.BookingEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	sess, err := p.connected(ctx)
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	err = sess.ch.Publish("", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BookingID + ":" + string(event.Type),
		Type:         string(event.Type),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		if errors.Is(err, amqp.ErrClosed) {
			// NotifyClose может прийти позже, следующий Publish переподключится
			_ = sess.close()
			p.sess = nil
		}
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	p.logger.LogAttrs(ctx, logger.DebugLevel, "booking event published",
		logger.String("type", string(event.Type)),
		logger.String("booking_id", event.BookingID),
	)
	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isClosed {
		return nil
	}
	p.isClosed = true
	close(p.done)

	if p.sess == nil {
		return nil
	}
	err := p.sess.close()
	p.sess = nil
	return err
}

// NoopPublisher drops events. Used when rabbitmq is not configured.
type NoopPublisher struct {
	logger logger.Logger
}

func NewNoopPublisher(logger logger.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) Publish(ctx context.Context, event domain.BookingEvent) error {
	p.logger.LogAttrs(ctx, logger.DebugLevel, "broker disabled, event dropped",
		logger.String("type", string(event.Type)),
		logger.String("booking_id", event.BookingID),
	)
	return nil
}

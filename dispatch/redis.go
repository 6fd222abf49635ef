package dispatch

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/logging"
	"github.com/hostdeck/wsconnect/model"
	"github.com/redis/go-redis/v9"
)

const (
	relayQueueSize      = 256
	relayPublishTimeout = 2 * time.Second
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// relayEnvelope wraps a notification with the originating relay instance
type relayEnvelope struct {
	Event      string          `json:"event"`
	InstanceID string          `json:"instance_id"`
	ReceivedAt time.Time       `json:"received_at"`
	Message    json.RawMessage `json:"message"`
}

// RedisRelay republishes every notification it receives to a Redis pub/sub channel,
// so processes without their own websocket connection can follow the live stream
type RedisRelay struct {
	client     *redis.Client
	channel    string
	instanceID string

	queue chan *model.Message

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	active bool
}

func NewRedisRelay(cfg *RedisConfig) *RedisRelay {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: relayPublishTimeout,
	})
	ctx, cancel := context.WithCancel(context.Background())

	return &RedisRelay{
		client:     client,
		channel:    cfg.Prefix + "notifications",
		instanceID: uuid.New().String(),
		queue:      make(chan *model.Message, relayQueueSize),
		ctx:        ctx,
		cancel:     cancel,
	}
}

var _ api.MessageListenerInterface = (*RedisRelay)(nil)

// check the Redis connection and start publishing
func (r *RedisRelay) Start() error {
	if err := r.client.Ping(r.ctx).Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.active = true
	r.mu.Unlock()

	r.wg.Add(1)
	go r.run()

	logging.Log().Info("redis relay started, instance", r.instanceID, "channel", r.channel)

	return nil
}

// stop publishing and close the Redis connection
func (r *RedisRelay) Stop() error {
	r.mu.Lock()
	r.active = false
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()

	return r.client.Close()
}

// reports whether the relay is publishing
func (r *RedisRelay) Available() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

func (r *RedisRelay) Channel() string {
	return r.channel
}

// queues the message for publishing, never blocks the dispatching goroutine
func (r *RedisRelay) HandleMessage(msg *model.Message) {
	if !r.Available() {
		return
	}

	select {
	case r.queue <- msg:
	default:
		logging.Log().Warn("redis relay queue full, dropping message")
	}
}

func (r *RedisRelay) run() {
	defer r.wg.Done()

	for {
		select {
		case <-r.ctx.Done():
			return
		case msg := <-r.queue:
			if err := r.publish(msg); err != nil {
				logging.Log().Error("redis relay publish failed:", err)
			}
		}
	}
}

func (r *RedisRelay) publish(msg *model.Message) error {
	data, err := r.encode(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(r.ctx, relayPublishTimeout)
	defer cancel()

	return r.client.Publish(ctx, r.channel, data).Err()
}

func (r *RedisRelay) encode(msg *model.Message) ([]byte, error) {
	env := relayEnvelope{
		Event:      api.MessageNotificationName,
		InstanceID: r.instanceID,
		ReceivedAt: msg.ReceivedAt,
		Message:    msg.Raw,
	}

	return json.Marshal(env)
}

package redisstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"rescue-passport/internal/domain/passports"
	"rescue-passport/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultStream = "passport-events"

	// MaxLen aproximado del stream; Redis recorta lo más viejo.
	DefaultMaxLen = 100_000

	publishTimeout = 2 * time.Second
)

// Open crea el cliente desde una URL redis:// y verifica con PING.
func Open(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// Publisher publica cada evento de pasaporte en un Redis stream (XADD).
// Implementa passports.EventSink; los errores se loguean y no vuelven al caller.
type Publisher struct {
	client redis.Cmdable
	stream string
	maxLen int64
	log    logger.Logger
}

func NewPublisher(client redis.Cmdable, stream string, log logger.Logger) *Publisher {
	stream = strings.TrimSpace(stream)
	if stream == "" {
		stream = DefaultStream
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Publisher{
		client: client,
		stream: stream,
		maxLen: DefaultMaxLen,
		log:    log,
	}
}

func (p *Publisher) Emit(ctx context.Context, e passports.Event) {
	args, err := p.xaddArgs(e)
	if err != nil {
		p.log.Error("encode passport event for redis failed", map[string]any{"kind": e.Kind(), "error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		p.log.Error("publish passport event to redis failed", map[string]any{
			"stream":      p.stream,
			"kind":        e.Kind(),
			"passport_id": e.PassportID(),
			"error":       err.Error(),
		})
	}
}

func (p *Publisher) xaddArgs(e passports.Event) (*redis.XAddArgs, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"kind":        string(e.Kind()),
			"passport_id": string(e.PassportID()),
			"actor":       string(e.Actor()),
			"payload":     string(payload),
		},
	}, nil
}

package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/nutricart-tech/go-backend/internal/cfg"
	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/jitter"
	"github.com/nutricart-tech/go-backend/pkg/logger"
	"github.com/segmentio/kafka-go"
)

const maxWriteAttempts = 3

// Producer публикует аналитические события о выданных рекомендациях.
// События потребляет офлайн-пайплайн обучения; потеря события не критична,
// поэтому сбои записи логируются, а не всплывают к пользователю.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// recommendationServedEvent — формат события recommendation.served.
type recommendationServedEvent struct {
	EventID        string  `json:"event_id"`
	UserID         int64   `json:"user_id"`
	BasketIDs      []int64 `json:"basket_ids"`
	RecommendedIDs []int64 `json:"recommended_ids"`
	Gamma          float64 `json:"gamma"`
	ServedAt       int64   `json:"served_at"`
}

// RecommendationServed отправляет событие о выданных рекомендациях.
// Запись повторяется с экспоненциальной задержкой и джиттером.
func (p *Producer) RecommendationServed(ctx context.Context, req *usecase.RecommendationServedReq) error {
	const (
		op         = "Producer.RecommendationServed"
		baseJitter = 200 * time.Millisecond
		maxJitter  = 2 * time.Second
	)

	value, err := json.Marshal(recommendationServedEvent{
		EventID:        uuid.NewString(),
		UserID:         req.UserID,
		BasketIDs:      req.BasketIDs,
		RecommendedIDs: req.RecommendedIDs,
		Gamma:          req.Gamma,
		ServedAt:       time.Now().UnixNano(),
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(req.UserID, 10)),
		Value: value,
	}

	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		err = p.writer.WriteMessages(ctx, msg)
		if err == nil {
			return nil
		}

		if attempt == maxWriteAttempts-1 {
			break
		}

		sleepTime := jitter.ExponentialBackoff(baseJitter, maxJitter, attempt, jitter.DefaultJitter)
		p.logger.Warnf("Kafka write failed, retrying in %v (attempt %d)", sleepTime, attempt+1)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return e.Wrap(op, ctx.Err())
		}
	}

	return e.Wrap(op, fmt.Errorf("all %d attempts failed: %w", maxWriteAttempts, err))
}

// EnsureTopic создаёт топик, если он ещё не существует.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

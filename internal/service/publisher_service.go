package service

import (
	"encoding/json"
	"log"
	"time"

	"bevgenie-be/internal/dto"
	"bevgenie-be/pkg/persona"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishSignals(sessionId string, signals []persona.Signal, before, after *persona.ScoreVector, occurredAt time.Time)
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

// PublishSignals fans extracted signals out to the analytics topic, pairing
// each signal with the dimension's confidence before and after accumulation.
// Publishing is fire-and-forget: the chat turn never blocks or fails on the
// audit path.
func (ps *publisherService) PublishSignals(sessionId string, signals []persona.Signal, before, after *persona.ScoreVector, occurredAt time.Time) {
	for _, sig := range signals {
		value := sig.Value
		if sig.Vector == persona.VectorPainPoint {
			value = string(sig.PainPoint)
		}

		payload, err := json.Marshal(dto.SignalEventMessage{
			SessionId:        sessionId,
			Vector:           string(sig.Vector),
			Value:            value,
			Strength:         string(sig.Strength),
			ConfidenceBefore: dimensionConfidence(before, sig),
			ConfidenceAfter:  dimensionConfidence(after, sig),
			Evidence:         sig.Evidence,
			Source:           string(sig.Source),
			OccurredAt:       occurredAt,
		})
		if err != nil {
			log.Printf("[ERROR] Failed to marshal signal event: %v", err)
			continue
		}

		msg := message.NewMessage(watermill.NewUUID(), payload)
		if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
			log.Printf("[ERROR] Failed to publish signal event: %v", err)
		}
	}
}

// dimensionConfidence reads the confidence a signal's dimension holds in the
// given score vector. Detection vectors report on a 0-100 scale, pain points
// and the legacy user-type scores on 0-1.
func dimensionConfidence(v *persona.ScoreVector, sig persona.Signal) float64 {
	if v == nil {
		return 0
	}

	switch sig.Vector {
	case persona.VectorPainPoint:
		return v.PainPointConfidence[sig.PainPoint]
	case persona.VectorLegacyUserType:
		if sig.Value == persona.LegacyDistributor {
			return v.DistributorScore
		}
		return v.SupplierScore
	default:
		if dv := v.Detection(sig.Vector); dv != nil {
			return dv.Confidence
		}
		return 0
	}
}

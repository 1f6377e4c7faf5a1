//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/routing-gateway/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	mode := flag.String("mode", "route", "route, range, batch or matrix")
	flag.Parse()

	_ = godotenv.Load()
	// ключ берётся только из окружения, пустой ключ подставит воркер из своей конфигурации
	key := os.Getenv("TOMTOM_API_KEY")

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	origin := domain.Coordinate{Lat: 42.37806, Lon: -87.94427}
	destination := domain.Coordinate{Lat: 42.39081, Lon: -87.95857}

	event := domain.RoutingJobEvent{
		JobID: uuid.New(),
		Mode:  domain.Mode(*mode),
		Key:   key,
	}

	switch event.Mode {
	case domain.ModeRoute:
		event.Route = &domain.RouteJobParams{Origin: origin, Destination: destination}
	case domain.ModeRange:
		seconds := 900.0
		event.Range = &domain.RangeJobParams{Origin: origin, Budget: domain.Budget{TimeInSec: &seconds}}
	case domain.ModeBatch:
		event.Batch = &domain.BatchJobParams{Pairs: []domain.RoutePair{
			{Origin: origin, Destination: destination},
			{Origin: destination, Destination: origin},
		}}
	case domain.ModeMatrix:
		event.Matrix = &domain.MatrixJobParams{
			Origins:      []domain.Coordinate{origin, destination},
			Destinations: []domain.Coordinate{destination, origin},
		}
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamRoutingJobs,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Job published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamRoutingJobs)
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Job ID: %s\n", event.JobID)
	fmt.Printf("   Mode: %s\n", event.Mode)

	fmt.Printf("\nWaiting for response in %s...\n", domain.StreamRoutingDone)

	deadline := time.Now().Add(60 * time.Second)
	lastID := "0"
	for time.Now().Before(deadline) {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamRoutingDone, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			log.Printf("Read failed: %v", err)
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				raw, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var done domain.RoutingDoneEvent
				if err := json.Unmarshal([]byte(raw), &done); err != nil || done.JobID != event.JobID {
					continue
				}

				pretty, _ := json.MarshalIndent(done, "", "  ")
				fmt.Printf("\nResponse received:\n%s\n", pretty)
				return
			}
		}
	}

	fmt.Println("Timeout waiting for response")
}

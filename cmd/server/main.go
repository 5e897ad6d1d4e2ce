package main

import (
	"context"
	"flag"
	"log"
	"net"
	"strings"
	"time"

	"google.golang.org/grpc"

	"mercury/api/grpcserver"
	pb "mercury/api/pb"
	"mercury/infra/kafka"
	"mercury/infra/ring"
	"mercury/infra/sequence"
	entrywal "mercury/infra/wal/entry"
	exitwal "mercury/infra/wal/exit"
	"mercury/jobs/broadcaster"
	"mercury/jobs/feed"
	"mercury/service"
)

func main() {
	var (
		listenAddr  = flag.String("listen", ":50051", "gRPC listen address")
		walDir      = flag.String("wal-dir", "./data/wal", "entry WAL directory")
		outboxDir   = flag.String("outbox-dir", "./data/outbox", "trade outbox directory")
		snapshotDir = flag.String("snapshot-dir", "./data/snapshots", "snapshot directory")
		brokers     = flag.String("brokers", "", "comma-separated Kafka brokers (empty disables publishing)")
		tradeTopic  = flag.String("trade-topic", "mercury.trades", "durable trade topic")
		feedTopic   = flag.String("feed-topic", "mercury.feed", "live feed topic")
		arenaCap    = flag.Int("arena", 1<<20, "order arena capacity")
	)
	flag.Parse()

	// ---------------- Entry WAL ----------------

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:             *walDir,
		SegmentSize:     2 * 1024 * 1024,
		SegmentDuration: time.Minute,
	})
	if err != nil {
		log.Fatalf("entry WAL init failed: %v", err)
	}
	defer entryWAL.Close()

	// ---------------- Trade outbox ----------------

	outbox, err := exitwal.Open(*outboxDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer outbox.Close()

	// ---------------- Service ----------------

	seqGen := sequence.New(0)
	events := ring.New[service.TradeEvent](1 << 16)

	svc := service.New(*arenaCap, seqGen, entryWAL, outbox, events)

	if err := svc.Recover(*walDir, *snapshotDir); err != nil {
		log.Fatalf("recovery failed: %v", err)
	}

	// ---------------- Background jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob(ctx, *snapshotDir, 30*time.Second)

	if *brokers != "" {
		brokerList := strings.Split(*brokers, ",")

		bc, err := broadcaster.New(outbox, broadcaster.Config{
			Brokers: brokerList,
			Topic:   *tradeTopic,
		})
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		go bc.Run(ctx)

		producer := kafka.NewProducer(kafka.Config{
			Brokers: brokerList,
			Topic:   *feedTopic,
		})
		defer producer.Close()
		go feed.New(events, producer, feed.Config{}).Run(ctx)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", *listenAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterEngineServer(grpcSrv, grpcserver.NewServer(svc))

	log.Printf("mercury engine serving on %s", *listenAddr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}

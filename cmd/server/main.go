package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"

	"blockfall/proto"
	"blockfall/server"

	"google.golang.org/grpc"
)

func main() {
	addr := flag.String("addr", ":9000", "address to listen on")
	flag.Parse()

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	defer lis.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	s := grpc.NewServer()
	defer s.Stop()
	proto.RegisterBlockfallServiceServer(s, server.New(logger))

	fmt.Printf("relay server listening on %s\n", *addr)
	if err := s.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

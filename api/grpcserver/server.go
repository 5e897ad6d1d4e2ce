// Package grpcserver adapts OrderService to the gRPC API.
package grpcserver

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "mercury/api/pb"
	"mercury/domain/engine"
	"mercury/service"
)

type Server struct {
	pb.UnimplementedEngineServer
	svc *service.OrderService
}

func NewServer(svc *service.OrderService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) PlaceOrder(ctx context.Context, req *pb.PlaceOrderRequest) (*pb.PlaceOrderResponse, error) {
	res, err := s.svc.PlaceOrder(req.Id, req.Price, req.Qty, toSide(req.Side))
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf("[grpc] PlaceOrder id=%d side=%v price=%d qty=%d seq=%d filled=%d",
		req.Id, req.Side, req.Price, req.Qty, res.Seq, res.Filled)

	return &pb.PlaceOrderResponse{
		Seq:     res.Seq,
		Filled:  res.Filled,
		Resting: res.Resting,
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) TopOfBook(ctx context.Context, req *pb.TopOfBookRequest) (*pb.TopOfBookResponse, error) {
	top := s.svc.TopOfBook()
	return &pb.TopOfBookResponse{
		BestBid: top.Bid,
		HasBid:  top.HasBid,
		BestAsk: top.Ask,
		HasAsk:  top.HasAsk,
	}, nil
}

func (s *Server) Stats(ctx context.Context, req *pb.StatsRequest) (*pb.StatsResponse, error) {
	st := s.svc.Stats()
	return &pb.StatsResponse{
		TradesExecuted: st.TradesExecuted,
		OrdersAccepted: st.OrdersAccepted,
		OrdersRejected: st.OrdersRejected,
		RestingOrders:  uint64(st.RestingOrders),
	}, nil
}

// -------------------- Converters --------------------

func toSide(s pb.Side) engine.Side {
	if s == pb.Side_SIDE_SELL {
		return engine.Sell
	}
	return engine.Buy
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, engine.ErrInvalidOrder):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, engine.ErrArenaExhausted):
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

package grpcserver

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "coffee/api/pb"
	"coffee/domain/order"
	"coffee/service"
)

// Server adapts OrderService to gRPC.
type Server struct {
	pb.UnimplementedCoffeeServiceServer
	svc *service.OrderService
	log *zap.Logger
}

func NewServer(svc *service.OrderService, log *zap.Logger) *Server {
	return &Server{svc: svc, log: log}
}

// -------------------- Commands --------------------

func (s *Server) MakeCoffee(
	ctx context.Context,
	req *pb.MakeCoffeeRequest,
) (*pb.MakeCoffeeResponse, error) {
	o, err := s.svc.PlaceOrder(ctx, order.Request{
		Type:     toCoffeeType(req.GetType()),
		Size:     toSize(req.GetSize()),
		Customer: req.GetCustomerName(),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	// IDs never exceed order.MaxID, so the conversion is exact.
	return &pb.MakeCoffeeResponse{
		OrderId: int32(o.ID),
		Status:  string(o.Status),
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetOrderStatus(
	ctx context.Context,
	req *pb.GetOrderStatusRequest,
) (*pb.GetOrderStatusResponse, error) {
	o, err := s.svc.GetOrderStatus(ctx, order.ID(req.GetOrderId()))
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.GetOrderStatusResponse{
		OrderId: int32(o.ID),
		Status:  string(o.Status),
	}, nil
}

// -------------------- Errors --------------------

func toStatus(err error) error {
	var nf *order.NotFoundError
	switch {
	case errors.As(err, &nf):
		return status.Error(codes.NotFound, nf.Error())
	case errors.Is(err, order.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, order.ErrIDsExhausted):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// -------------------- Converters --------------------

func toCoffeeType(t pb.CoffeeType) order.CoffeeType {
	switch t {
	case pb.CoffeeType_ESPRESSO:
		return order.Espresso
	case pb.CoffeeType_AMERICANO:
		return order.Americano
	case pb.CoffeeType_LATTE:
		return order.Latte
	case pb.CoffeeType_CAPPUCCINO:
		return order.Cappuccino
	case pb.CoffeeType_MOCHA:
		return order.Mocha
	default:
		// Unknown values are kept so they show up in logs and events.
		return order.CoffeeType(t)
	}
}

func toSize(s pb.CoffeeSize) order.Size {
	switch s {
	case pb.CoffeeSize_SMALL:
		return order.Small
	case pb.CoffeeSize_MEDIUM:
		return order.Medium
	case pb.CoffeeSize_LARGE:
		return order.Large
	default:
		return order.Size(s)
	}
}

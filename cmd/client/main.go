// Command client places one coffee order and reads its status back.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "coffee/api/pb"
)

func main() {
	addr := flag.String("addr", "localhost:50051", "server address")
	coffee := flag.String("type", "AMERICANO", "coffee type")
	size := flag.String("size", "MEDIUM", "cup size")
	customer := flag.String("customer", "Ronaldo", "customer name")
	lookup := flag.Int("lookup", 0, "only look up this order id")
	timeout := flag.Duration("timeout", 5*time.Second, "per call timeout")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "dial %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	client := pb.NewCoffeeServiceClient(conn)

	id := int32(*lookup)
	if id == 0 {
		req, err := buildRequest(*coffee, *size, *customer)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if id, err = makeCoffee(client, req, *timeout); err != nil {
			fmt.Fprintf(os.Stderr, "An error has occurred: %v\n", err)
			os.Exit(1)
		}
	}

	if err := getOrderStatus(client, id, *timeout); err != nil {
		os.Exit(1)
	}
}

func buildRequest(coffee, size, customer string) (*pb.MakeCoffeeRequest, error) {
	t, ok := pb.CoffeeType_value[strings.ToUpper(coffee)]
	if !ok {
		return nil, fmt.Errorf("unknown coffee type %q", coffee)
	}
	s, ok := pb.CoffeeSize_value[strings.ToUpper(size)]
	if !ok {
		return nil, fmt.Errorf("unknown size %q", size)
	}
	return &pb.MakeCoffeeRequest{
		Type:         pb.CoffeeType(t),
		Size:         pb.CoffeeSize(s),
		CustomerName: customer,
	}, nil
}

func makeCoffee(client pb.CoffeeServiceClient, req *pb.MakeCoffeeRequest, timeout time.Duration) (int32, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Printf("Placing an order for a %s %s...\n", req.GetSize(), req.GetType())
	resp, err := client.MakeCoffee(ctx, req)
	if err != nil {
		return 0, err
	}
	fmt.Printf("Order ID: %d\n", resp.GetOrderId())
	fmt.Printf("Status: %s\n", resp.GetStatus())
	return resp.GetOrderId(), nil
}

func getOrderStatus(client pb.CoffeeServiceClient, id int32, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetOrderStatus(ctx, &pb.GetOrderStatusRequest{OrderId: id})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Printf("Order not found: %s\n", status.Convert(err).Message())
		} else {
			fmt.Printf("An error has occurred: %s\n", status.Convert(err).Message())
		}
		return err
	}
	fmt.Printf("Order ID: %d\n", resp.GetOrderId())
	fmt.Printf("Status: %s\n", resp.GetStatus())
	return nil
}

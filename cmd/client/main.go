// Command chat-watch is a CLI client for the delivery stream, mostly for
// operators and integration debugging.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	u "github.com/gofrs/uuid/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	grpcinsecure "google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/rcrwhyg/chat/gen/go/delivery/v1"
)

// ---- grpc dial ----

type bearerCreds struct {
	token     string
	plaintext bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return !b.plaintext }

func loadTLS(caPath string, insecure bool) (credentials.TransportCredentials, error) {
	if insecure {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

func dial(addr, caPath string, insecure, plaintext bool, bearer string) (*grpc.ClientConn, pb.DeliveryServiceClient, error) {
	var creds credentials.TransportCredentials
	if plaintext {
		creds = grpcinsecure.NewCredentials()
	} else {
		var err error
		creds, err = loadTLS(caPath, insecure)
		if err != nil {
			return nil, nil, err
		}
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer, plaintext: plaintext}))
	}
	cc, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, pb.NewDeliveryServiceClient(cc), nil
}

// parseCursors turns "chatID=seq,chatID=seq" into resume cursors.
func parseCursors(s string) ([]*pb.ChatCursor, error) {
	if s == "" {
		return nil, nil
	}
	var out []*pb.ChatCursor
	for _, part := range strings.Split(s, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("bad cursor %q (want chatID=seq)", part)
		}
		if _, err := u.FromString(kv[0]); err != nil {
			return nil, fmt.Errorf("bad chat id %q: %w", kv[0], err)
		}
		seq, err := strconv.ParseInt(kv[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad seq %q: %w", kv[1], err)
		}
		out = append(out, &pb.ChatCursor{ChatId: kv[0], LastSeq: seq})
	}
	return out, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func usage() {
	fmt.Fprintf(os.Stderr, `chat-watch CLI
Usage:
  chat-watch -addr HOST:PORT -token JWT [-cacert file | -insecure | -plaintext] <cmd> [args]

Commands:
  version
  watch  [-from chatID=seq,chatID=seq]   (subscribe and print frames)
  ack    -chat <uuid> -seq <n>
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	addr := flag.String("addr", "localhost:8443", "server addr")
	token := flag.String("token", os.Getenv("CHAT_TOKEN"), "bearer token")
	caPath := flag.String("cacert", "", "CA cert (PEM)")
	insecure := flag.Bool("insecure", false, "skip cert verify (dev)")
	plaintext := flag.Bool("plaintext", false, "no TLS (dev)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cmd {

	case "version":
		fmt.Printf("chat-watch %s (%s)\n", version, buildDate)

	case "watch":
		fs := flag.NewFlagSet("watch", flag.ExitOnError)
		from := fs.String("from", "", "resume cursors: chatID=seq,chatID=seq")
		_ = fs.Parse(flag.Args()[1:])

		cursors, err := parseCursors(*from)
		if err != nil {
			fatal(err)
		}
		cc, client, err := dial(*addr, *caPath, *insecure, *plaintext, *token)
		if err != nil {
			fatal(err)
		}
		defer cc.Close()

		stream, err := client.Subscribe(ctx, &pb.SubscribeRequest{Resume: cursors})
		if err != nil {
			fatal(err)
		}
		for {
			frame, err := stream.Recv()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				fatal(err)
			}
			printJSON(map[string]any{
				"chat":    frame.GetChatId(),
				"kind":    frame.GetKind().String(),
				"seq":     frame.GetSeq(),
				"message": frame.GetMessage(),
				"members": frame.GetMembers(),
			})
		}

	case "ack":
		fs := flag.NewFlagSet("ack", flag.ExitOnError)
		chat := fs.String("chat", "", "chat id")
		seq := fs.Int64("seq", 0, "acknowledged seq")
		_ = fs.Parse(flag.Args()[1:])

		if _, err := u.FromString(*chat); err != nil {
			fatal(fmt.Errorf("bad -chat: %w", err))
		}
		cc, client, err := dial(*addr, *caPath, *insecure, *plaintext, *token)
		if err != nil {
			fatal(err)
		}
		defer cc.Close()

		if _, err := client.Ack(ctx, &pb.AckRequest{ChatId: *chat, Seq: *seq}); err != nil {
			fatal(err)
		}
		fmt.Println("ok")

	default:
		usage()
	}
}

func fatal(err error) {
	if st, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "error: %s: %s\n", st.Code(), st.Message())
	} else {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(1)
}

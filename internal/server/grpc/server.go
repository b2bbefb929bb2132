// Package grpcserver exposes the delivery gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/rcrwhyg/chat/gen/go/delivery/v1"
	"github.com/rcrwhyg/chat/internal/convert"
	"github.com/rcrwhyg/chat/internal/errs"
	"github.com/rcrwhyg/chat/internal/limiter"
	"github.com/rcrwhyg/chat/internal/model"
	"github.com/rcrwhyg/chat/internal/registry"
	"github.com/rcrwhyg/chat/internal/repository"
	"github.com/rcrwhyg/chat/internal/resume"
)

// Server wires the delivery core into gRPC handlers.
type Server struct {
	pb.UnimplementedDeliveryServiceServer
	reg     *registry.Registry
	resume  *resume.Manager
	cursors repository.CursorRepository
	events  repository.EventRepository
	streams *limiter.ConnLimiter
	signKey []byte
	log     *zap.Logger
}

// New constructs a gRPC server with injected components.
func New(reg *registry.Registry, rm *resume.Manager, cursors repository.CursorRepository,
	events repository.EventRepository, streams *limiter.ConnLimiter, signKey []byte, log *zap.Logger) *Server {
	return &Server{reg: reg, resume: rm, cursors: cursors, events: events, streams: streams, signKey: signKey, log: log}
}

// Subscribe opens the per-user frame stream: register, catch up, go live.
// The connection is registered before replay so that live envelopes arriving
// meanwhile are parked and folded in without gaps or duplicates.
func (s *Server) Subscribe(req *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.Frame]) error {
	ctx := stream.Context()
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return status.Error(codes.Unauthenticated, "no auth")
	}
	claimed, err := convert.FromProtoCursors(req.GetResume())
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "bad resume cursors: %v", err)
	}

	if err := s.streams.Acquire(userID); err != nil {
		return status.Error(codes.ResourceExhausted, "too many concurrent streams")
	}
	defer s.streams.Release(userID)

	conn := s.reg.NewConn(userID)
	s.reg.Register(conn)
	defer func() {
		s.reg.Unregister(conn)
		conn.Close(nil)
	}()

	// Replay writes through to the transport so a backlog larger than the
	// connection buffer still drains; only live traffic goes through the
	// buffered channel below.
	send := func(env *model.Envelope) error {
		return stream.Send(convert.ToProtoFrame(env))
	}
	if err := s.resume.Resume(ctx, conn, claimed, send); err != nil {
		switch {
		case errors.Is(err, errs.ErrResyncRequired):
			return status.Error(codes.FailedPrecondition, "resync required")
		case ctx.Err() != nil:
			return nil
		default:
			return status.Errorf(codes.Internal, "resume: %v", err)
		}
	}

	for {
		select {
		case env := <-conn.Out():
			if err := stream.Send(convert.ToProtoFrame(env)); err != nil {
				return err
			}
		case <-conn.Done():
			// Anything still buffered is discarded; the client catches up
			// through resume on its next connect.
			if errors.Is(conn.Err(), errs.ErrBufferOverflow) {
				return status.Error(codes.ResourceExhausted, "slow consumer")
			}
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

// Ack advances the caller's stored cursor for one chat. Lower-than-stored
// sequences are no-ops by the cursor's monotonic write rule; sequences past
// the chat head are rejected so a buggy client cannot park its cursor beyond
// events that exist.
func (s *Server) Ack(ctx context.Context, req *pb.AckRequest) (*pb.AckResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	chatID, err := uuid.FromString(req.GetChatId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad chat_id: %v", err)
	}
	if req.GetSeq() < 0 {
		return nil, status.Error(codes.InvalidArgument, "negative seq")
	}
	head, err := s.events.HeadSeq(ctx, chatID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "ack: %v", err)
	}
	if req.GetSeq() > head {
		return nil, status.Errorf(codes.InvalidArgument, "seq %d beyond chat head %d", req.GetSeq(), head)
	}
	if err := s.cursors.Advance(ctx, userID, chatID, req.GetSeq()); err != nil {
		return nil, status.Errorf(codes.Internal, "ack: %v", err)
	}
	return &pb.AckResponse{}, nil
}

// userIDFromCtx: extract "authorization: Bearer <JWT>", verify HS256, return sub as UUID.
func (s *Server) userIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	v := jwt.NewValidator(jwt.WithLeeway(30 * time.Second))
	if err := v.Validate(&claims); err != nil {
		return uuid.Nil, errors.New("token expired or not valid yet")
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.New("bad subject")
	}
	return id, nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}

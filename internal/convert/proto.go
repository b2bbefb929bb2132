// Package convert maps domain entities to and from protobuf messages.
package convert

import (
	"fmt"
	"time"

	u "github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/rcrwhyg/chat/gen/go/delivery/v1"
	"github.com/rcrwhyg/chat/internal/model"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func ids(in []u.UUID) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, id := range in {
		out[i] = id.String()
	}
	return out
}

// --- Envelope (server -> client) ---

// ToProtoKind maps a domain event kind onto the wire enum.
func ToProtoKind(k model.EventKind) pb.EventKind {
	switch k {
	case model.EventMessageCreated:
		return pb.EventKind_EVENT_KIND_MESSAGE_CREATED
	case model.EventMembersChanged:
		return pb.EventKind_EVENT_KIND_MEMBERS_CHANGED
	default:
		return pb.EventKind_EVENT_KIND_UNSPECIFIED
	}
}

// ToProtoMessage converts a domain message to its wire form.
func ToProtoMessage(m *model.Message) *pb.Message {
	if m == nil {
		return nil
	}
	return &pb.Message{
		Id:        m.ID.String(),
		ChatId:    m.ChatID.String(),
		SenderId:  m.SenderID.String(),
		Content:   m.Content,
		Files:     m.Files,
		Seq:       m.Seq,
		CreatedAt: ts(m.CreatedAt),
	}
}

// ToProtoFrame converts one envelope to a stream frame.
func ToProtoFrame(env *model.Envelope) *pb.Frame {
	f := &pb.Frame{
		ChatId: env.ChatID.String(),
		Kind:   ToProtoKind(env.Kind),
		Seq:    env.Seq,
	}
	switch env.Kind {
	case model.EventMessageCreated:
		f.Message = ToProtoMessage(env.Message)
	case model.EventMembersChanged:
		f.Members = &pb.MembersChanged{
			OldMembers: ids(env.OldMembers),
			NewMembers: ids(env.NewMembers),
		}
	}
	return f
}

// --- Resume cursors (client -> server) ---

// FromProtoCursors converts the client's resume claims into a per-chat map.
func FromProtoCursors(in []*pb.ChatCursor) (map[u.UUID]int64, error) {
	out := make(map[u.UUID]int64, len(in))
	for i, c := range in {
		if c == nil {
			return nil, fmt.Errorf("cursor[%d]: nil", i)
		}
		var id u.UUID
		if err := id.UnmarshalText([]byte(c.GetChatId())); err != nil {
			return nil, fmt.Errorf("cursor[%d]: invalid chat_id: %w", i, err)
		}
		if c.GetLastSeq() < 0 {
			return nil, fmt.Errorf("cursor[%d]: negative last_seq", i)
		}
		out[id] = c.GetLastSeq()
	}
	return out, nil
}

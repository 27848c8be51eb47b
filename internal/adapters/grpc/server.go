package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lanternworks/auth-service/internal/application"
)

// SessionService lets sibling services resolve an opaque session token to its
// owning user without going through the HTTP surface.
type SessionService interface {
	Introspect(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type SessionServer struct {
	service *application.Service
}

func NewSessionServer(service *application.Service) *SessionServer {
	return &SessionServer{service: service}
}

func Register(server grpc.ServiceRegistrar, svc SessionService) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: "lanternworks.auth.v1.SessionService",
		HandlerType: (*SessionService)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "Introspect",
				Handler:    introspectHandler(svc),
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "proto/auth/v1/session.proto",
	}, svc)
}

func (s *SessionServer) Introspect(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tokenVal := req.GetFields()["token"]
	if tokenVal == nil {
		return nil, status.Error(codes.InvalidArgument, "missing token")
	}
	token := tokenVal.GetStringValue()
	if token == "" {
		return nil, status.Error(codes.InvalidArgument, "missing token")
	}

	session, err := s.service.Authenticate(ctx, token)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "introspect: %v", err)
	}
	if session == nil {
		resp, buildErr := structpb.NewStruct(map[string]any{"active": false})
		if buildErr != nil {
			return nil, status.Errorf(codes.Internal, "build response: %v", buildErr)
		}
		return resp, nil
	}

	resp, err := structpb.NewStruct(map[string]any{
		"active":         true,
		"session_id":     session.ID.String(),
		"user_id":        session.UserID.String(),
		"keep_signed_in": session.KeepSignedIn,
		"started_at":     session.StartedAt.Unix(),
		"expires_at":     session.ExpiresAt().Unix(),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	return resp, nil
}

func introspectHandler(svc SessionService) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := &structpb.Struct{}
		if err := dec(req); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return svc.Introspect(ctx, req)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/lanternworks.auth.v1.SessionService/Introspect",
		}
		handler := func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*structpb.Struct)
			if !ok {
				return nil, status.Error(codes.InvalidArgument, "invalid request type")
			}
			return svc.Introspect(ctx, typed)
		}
		return interceptor(ctx, req, info, handler)
	}
}

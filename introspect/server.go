// server.go: the IntrospectionService implementation.
//
// Grounded on the teacher's own observation that a gRPC service can be
// built and registered without a protoc code-generation step
// (grpc.go's ProtobufPluginServiceClient talks to a *grpc.ClientConn by
// hand rather than through generated stubs): ServiceDesc below is the
// same shape protoc-gen-go-grpc emits, hand-written, and Server exchanges
// google.protobuf.Struct values in place of messages introspect.proto
// would otherwise generate.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package introspect

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	jpplugins "github.com/agilira/jp-plugins"
)

// ServiceName is the gRPC service name, matching
// jpintrospect.IntrospectionService in introspect.proto.
const ServiceName = "jpintrospect.IntrospectionService"

// Server adapts a *jpplugins.Manager to the IntrospectionService contract.
// It holds no state of its own and calls only the manager's existing
// read-only query methods.
type Server struct {
	manager *jpplugins.Manager
}

// NewServer builds an introspection Server over manager.
func NewServer(manager *jpplugins.Manager) *Server {
	return &Server{manager: manager}
}

// Register attaches the introspection service to a running *grpc.Server.
func Register(s *grpc.Server, srv *Server) {
	s.RegisterService(&ServiceDesc, srv)
}

func (s *Server) ListPlugins(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"names": toAnySlice(s.manager.PluginsList()),
	})
}

func (s *Server) GetPluginInfo(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name := req.GetFields()["name"].GetStringValue()
	info, ok := s.manager.PluginInfo(name)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "plugin %q not found", name)
	}

	deps := make([]any, len(info.Dependencies))
	for i, d := range info.Dependencies {
		deps[i] = map[string]any{"name": d.Name, "version": d.Version}
	}

	fields := map[string]any{
		"name":         info.Name,
		"prettyName":   info.PrettyName,
		"version":      info.Version,
		"author":       info.Author,
		"url":          info.URL,
		"license":      info.License,
		"copyright":    info.Copyright,
		"dependencies": deps,
		"loaded":       s.manager.IsPluginLoaded(info.Name),
	}
	if !info.LoadedAt.IsZero() {
		fields["loadedAt"] = info.LoadedAt.Format(timeLayout)
	}
	return structpb.NewStruct(fields)
}

func (s *Server) GetLoadOrder(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"names": toAnySlice(s.manager.LoadOrder()),
	})
}

const timeLayout = "2006-01-02T15:04:05.999999999Z07:00"

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, v := range ss {
		out[i] = v
	}
	return out
}

// introspectionServer is the handler-side contract ServiceDesc dispatches
// against; *Server satisfies it.
type introspectionServer interface {
	ListPlugins(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetPluginInfo(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetLoadOrder(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var _ introspectionServer = (*Server)(nil)

func unaryHandler(method func(introspectionServer, context.Context, *structpb.Struct) (*structpb.Struct, error), fullMethod string) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return method(srv.(introspectionServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return method(srv.(introspectionServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc protoc-gen-go-grpc would otherwise
// generate from introspect.proto's service definition.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*introspectionServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListPlugins",
			Handler: unaryHandler(func(s introspectionServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.ListPlugins(ctx, in)
			}, ServiceName+"/ListPlugins"),
		},
		{
			MethodName: "GetPluginInfo",
			Handler: unaryHandler(func(s introspectionServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.GetPluginInfo(ctx, in)
			}, ServiceName+"/GetPluginInfo"),
		},
		{
			MethodName: "GetLoadOrder",
			Handler: unaryHandler(func(s introspectionServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.GetLoadOrder(ctx, in)
			}, ServiceName+"/GetLoadOrder"),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "introspect.proto",
}

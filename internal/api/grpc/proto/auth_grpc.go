package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Auth_Signup_FullMethodName                 = "/auth.v1.Auth/Signup"
	Auth_Login_FullMethodName                  = "/auth.v1.Auth/Login"
	Auth_Logout_FullMethodName                 = "/auth.v1.Auth/Logout"
	Auth_RefreshToken_FullMethodName           = "/auth.v1.Auth/RefreshToken"
	Auth_SendResetPasswordEmail_FullMethodName = "/auth.v1.Auth/SendResetPasswordEmail"
	Auth_UpdatePassword_FullMethodName         = "/auth.v1.Auth/UpdatePassword"
	Auth_ConfirmEmail_FullMethodName           = "/auth.v1.Auth/ConfirmEmail"
	Auth_GoogleAuth_FullMethodName             = "/auth.v1.Auth/GoogleAuth"
	Auth_GetSession_FullMethodName             = "/auth.v1.Auth/GetSession"
)

// AuthClient is the client API for the Auth service.
type AuthClient interface {
	Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenPair, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*Empty, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenPair, error)
	SendResetPasswordEmail(ctx context.Context, in *SendResetPasswordEmailRequest, opts ...grpc.CallOption) (*Empty, error)
	UpdatePassword(ctx context.Context, in *UpdatePasswordRequest, opts ...grpc.CallOption) (*Empty, error)
	ConfirmEmail(ctx context.Context, in *ConfirmEmailRequest, opts ...grpc.CallOption) (*Empty, error)
	GoogleAuth(ctx context.Context, in *GoogleAuthRequest, opts ...grpc.CallOption) (*TokenPair, error)
	GetSession(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Session, error)
}

type authClient struct {
	cc grpc.ClientConnInterface
}

// NewAuthClient creates an AuthClient that speaks the JSON codec.
func NewAuthClient(cc grpc.ClientConnInterface) AuthClient {
	return &authClient{cc}
}

func (c *authClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *authClient) Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SignupResponse, error) {
	out := new(SignupResponse)
	if err := c.invoke(ctx, Auth_Signup_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*TokenPair, error) {
	out := new(TokenPair)
	if err := c.invoke(ctx, Auth_Login_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.invoke(ctx, Auth_Logout_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenPair, error) {
	out := new(TokenPair)
	if err := c.invoke(ctx, Auth_RefreshToken_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) SendResetPasswordEmail(ctx context.Context, in *SendResetPasswordEmailRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.invoke(ctx, Auth_SendResetPasswordEmail_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) UpdatePassword(ctx context.Context, in *UpdatePasswordRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.invoke(ctx, Auth_UpdatePassword_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) ConfirmEmail(ctx context.Context, in *ConfirmEmailRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.invoke(ctx, Auth_ConfirmEmail_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) GoogleAuth(ctx context.Context, in *GoogleAuthRequest, opts ...grpc.CallOption) (*TokenPair, error) {
	out := new(TokenPair)
	if err := c.invoke(ctx, Auth_GoogleAuth_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) GetSession(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Session, error) {
	out := new(Session)
	if err := c.invoke(ctx, Auth_GetSession_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// AuthServer is the server API for the Auth service.
// Implementations must embed UnimplementedAuthServer.
type AuthServer interface {
	Signup(context.Context, *SignupRequest) (*SignupResponse, error)
	Login(context.Context, *LoginRequest) (*TokenPair, error)
	Logout(context.Context, *LogoutRequest) (*Empty, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*TokenPair, error)
	SendResetPasswordEmail(context.Context, *SendResetPasswordEmailRequest) (*Empty, error)
	UpdatePassword(context.Context, *UpdatePasswordRequest) (*Empty, error)
	ConfirmEmail(context.Context, *ConfirmEmailRequest) (*Empty, error)
	GoogleAuth(context.Context, *GoogleAuthRequest) (*TokenPair, error)
	GetSession(context.Context, *Empty) (*Session, error)
	mustEmbedUnimplementedAuthServer()
}

// UnimplementedAuthServer answers codes.Unimplemented for every method.
type UnimplementedAuthServer struct{}

func (UnimplementedAuthServer) Signup(context.Context, *SignupRequest) (*SignupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Signup not implemented")
}
func (UnimplementedAuthServer) Login(context.Context, *LoginRequest) (*TokenPair, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedAuthServer) Logout(context.Context, *LogoutRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedAuthServer) RefreshToken(context.Context, *RefreshTokenRequest) (*TokenPair, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedAuthServer) SendResetPasswordEmail(context.Context, *SendResetPasswordEmailRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendResetPasswordEmail not implemented")
}
func (UnimplementedAuthServer) UpdatePassword(context.Context, *UpdatePasswordRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdatePassword not implemented")
}
func (UnimplementedAuthServer) ConfirmEmail(context.Context, *ConfirmEmailRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmEmail not implemented")
}
func (UnimplementedAuthServer) GoogleAuth(context.Context, *GoogleAuthRequest) (*TokenPair, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GoogleAuth not implemented")
}
func (UnimplementedAuthServer) GetSession(context.Context, *Empty) (*Session, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSession not implemented")
}
func (UnimplementedAuthServer) mustEmbedUnimplementedAuthServer() {}

// RegisterAuthServer registers srv on s.
func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&Auth_ServiceDesc, srv)
}

func unaryHandler[Req any](method string, call func(AuthServer, context.Context, *Req) (any, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AuthServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AuthServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Auth_ServiceDesc is the grpc.ServiceDesc for the Auth service.
var Auth_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "auth.v1.Auth",
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Signup",
			Handler: unaryHandler(Auth_Signup_FullMethodName, func(s AuthServer, ctx context.Context, in *SignupRequest) (any, error) {
				return s.Signup(ctx, in)
			}),
		},
		{
			MethodName: "Login",
			Handler: unaryHandler(Auth_Login_FullMethodName, func(s AuthServer, ctx context.Context, in *LoginRequest) (any, error) {
				return s.Login(ctx, in)
			}),
		},
		{
			MethodName: "Logout",
			Handler: unaryHandler(Auth_Logout_FullMethodName, func(s AuthServer, ctx context.Context, in *LogoutRequest) (any, error) {
				return s.Logout(ctx, in)
			}),
		},
		{
			MethodName: "RefreshToken",
			Handler: unaryHandler(Auth_RefreshToken_FullMethodName, func(s AuthServer, ctx context.Context, in *RefreshTokenRequest) (any, error) {
				return s.RefreshToken(ctx, in)
			}),
		},
		{
			MethodName: "SendResetPasswordEmail",
			Handler: unaryHandler(Auth_SendResetPasswordEmail_FullMethodName, func(s AuthServer, ctx context.Context, in *SendResetPasswordEmailRequest) (any, error) {
				return s.SendResetPasswordEmail(ctx, in)
			}),
		},
		{
			MethodName: "UpdatePassword",
			Handler: unaryHandler(Auth_UpdatePassword_FullMethodName, func(s AuthServer, ctx context.Context, in *UpdatePasswordRequest) (any, error) {
				return s.UpdatePassword(ctx, in)
			}),
		},
		{
			MethodName: "ConfirmEmail",
			Handler: unaryHandler(Auth_ConfirmEmail_FullMethodName, func(s AuthServer, ctx context.Context, in *ConfirmEmailRequest) (any, error) {
				return s.ConfirmEmail(ctx, in)
			}),
		},
		{
			MethodName: "GoogleAuth",
			Handler: unaryHandler(Auth_GoogleAuth_FullMethodName, func(s AuthServer, ctx context.Context, in *GoogleAuthRequest) (any, error) {
				return s.GoogleAuth(ctx, in)
			}),
		},
		{
			MethodName: "GetSession",
			Handler: unaryHandler(Auth_GetSession_FullMethodName, func(s AuthServer, ctx context.Context, in *Empty) (any, error) {
				return s.GetSession(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "auth/v1/auth.proto",
}

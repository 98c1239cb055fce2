package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodec_Unmarshal(t *testing.T) {
	var req LoginRequest
	require.NoError(t, Codec{}.Unmarshal([]byte(`{"email":"a@x.com","password":"p"}`), &req))
	assert.Equal(t, LoginRequest{Email: "a@x.com", Password: "p"}, req)

	var empty Empty
	require.NoError(t, Codec{}.Unmarshal(nil, &empty))

	require.Error(t, Codec{}.Unmarshal([]byte(`{`), &req))
}

func TestCodec_MarshalUsesWireNames(t *testing.T) {
	b, err := Codec{}.Marshal(&TokenPair{AccessToken: "a", RefreshToken: "r"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"accessToken":"a","refreshToken":"r"}`, string(b))
}

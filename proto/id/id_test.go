package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

func TestIDType_Kind(t *testing.T) {
	tests := []struct {
		t    IDType
		kind string
	}{
		{IDType_ID_TYPE_UNSPECIFIED, "snowflake"},
		{IDType_ID_TYPE_SNOWFLAKE, "snowflake"},
		{IDType_ID_TYPE_UUID, "uuid"},
		{IDType_ID_TYPE_ULID, "ulid"},
		{IDType_ID_TYPE_KSUID, "ksuid"},
		{IDType_ID_TYPE_NANOID, "nanoid"},
		{IDType_ID_TYPE_CUID2, "cuid2"},
		{IDType(99), ""},
	}

	for _, tt := range tests {
		t.Run(tt.t.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.t.Kind())
		})
	}
}

func TestIDType_String(t *testing.T) {
	assert.Equal(t, "ID_TYPE_ULID", IDType_ID_TYPE_ULID.String())
	assert.Equal(t, "42", IDType(42).String())
}

func TestParseIDType(t *testing.T) {
	for _, in := range []string{"ulid", "ULID", " ulid ", "ID_TYPE_ULID", "id_type_ulid"} {
		got, err := ParseIDType(in)
		require.NoError(t, err, in)
		assert.Equal(t, IDType_ID_TYPE_ULID, got, in)
	}

	_, err := ParseIDType("guid")
	assert.Error(t, err)
}

func TestDescriptor_Registered(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName("id.IDService")
	require.NoError(t, err)

	svc, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	require.Equal(t, 5, svc.Methods().Len())

	stream := svc.Methods().ByName("StreamIDs")
	require.NotNil(t, stream)
	assert.True(t, stream.IsStreamingServer())
	assert.False(t, stream.IsStreamingClient())
	assert.Equal(t, protoreflect.FullName("id.GenerateIDResponse"), stream.Output().FullName())

	for _, m := range []string{"GenerateID", "GenerateBatchIDs", "StreamIDs", "ValidateID", "ParseID"} {
		assert.NotNil(t, svc.Methods().ByName(protoreflect.Name(m)), m)
	}
	assert.Equal(t, IDService_ServiceDesc.ServiceName, string(svc.FullName()))
}

func TestParseIDResponse_WireRoundTrip(t *testing.T) {
	in := &ParseIDResponse{
		Valid:       true,
		TimestampMs: 1577836801000,
		EntityType:  1,
		EntityName:  "user",
		Counter:     7,
		ApiVersion:  3,
		NodeId:      42,
	}

	data, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &ParseIDResponse{}
	require.NoError(t, proto.Unmarshal(data, out))
	assert.True(t, proto.Equal(in, out), "got %v", out)
}

func TestGenerateIDRequest_WireFormat(t *testing.T) {
	data, err := proto.Marshal(&GenerateIDRequest{Type: IDType_ID_TYPE_ULID, Entity: "user"})
	require.NoError(t, err)
	// field 1 varint 3, field 2 length-delimited "user"
	assert.Equal(t, []byte{0x08, 0x03, 0x12, 0x04, 'u', 's', 'e', 'r'}, data)
}

func TestGetters_NilSafe(t *testing.T) {
	var req *GenerateBatchIDsRequest
	assert.Equal(t, IDType_ID_TYPE_UNSPECIFIED, req.GetType())
	assert.Zero(t, req.GetCount())
	assert.Empty(t, req.GetEntity())

	var resp *ParseIDResponse
	assert.False(t, resp.GetValid())
	assert.Zero(t, resp.GetNodeId())
}

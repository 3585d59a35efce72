// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docstream/v1/docstream.proto

package docstreamv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CreateUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserRequest) Reset() {
	*x = CreateUserRequest{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserRequest) ProtoMessage() {}

func (x *CreateUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserRequest.ProtoReflect.Descriptor instead.
func (*CreateUserRequest) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{0}
}

func (x *CreateUserRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateUserRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	Created       bool                   `protobuf:"varint,2,opt,name=created,proto3" json:"created,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserResponse) Reset() {
	*x = CreateUserResponse{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserResponse) ProtoMessage() {}

func (x *CreateUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserResponse.ProtoReflect.Descriptor instead.
func (*CreateUserResponse) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{1}
}

func (x *CreateUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *CreateUserResponse) GetCreated() bool {
	if x != nil {
		return x.Created
	}
	return false
}

type GetUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserRequest) Reset() {
	*x = GetUserRequest{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserRequest) ProtoMessage() {}

func (x *GetUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserRequest.ProtoReflect.Descriptor instead.
func (*GetUserRequest) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{2}
}

func (x *GetUserRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserResponse) Reset() {
	*x = GetUserResponse{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserResponse) ProtoMessage() {}

func (x *GetUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserResponse.ProtoReflect.Descriptor instead.
func (*GetUserResponse) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{3}
}

func (x *GetUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type SetPlanRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	UserId string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// one of: free, pro, unlimited
	Plan          string `protobuf:"bytes,2,opt,name=plan,proto3" json:"plan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetPlanRequest) Reset() {
	*x = SetPlanRequest{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetPlanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPlanRequest) ProtoMessage() {}

func (x *SetPlanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPlanRequest.ProtoReflect.Descriptor instead.
func (*SetPlanRequest) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{4}
}

func (x *SetPlanRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SetPlanRequest) GetPlan() string {
	if x != nil {
		return x.Plan
	}
	return ""
}

type SetPlanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetPlanResponse) Reset() {
	*x = SetPlanResponse{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetPlanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPlanResponse) ProtoMessage() {}

func (x *SetPlanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPlanResponse.ProtoReflect.Descriptor instead.
func (*SetPlanResponse) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{5}
}

func (x *SetPlanResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type GetUsageRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	UserId string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// "YYYY-MM"; defaults to the current UTC month
	Month         string `protobuf:"bytes,2,opt,name=month,proto3" json:"month,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUsageRequest) Reset() {
	*x = GetUsageRequest{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUsageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUsageRequest) ProtoMessage() {}

func (x *GetUsageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUsageRequest.ProtoReflect.Descriptor instead.
func (*GetUsageRequest) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{6}
}

func (x *GetUsageRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetUsageRequest) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

type GetUsageResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Month string                 `protobuf:"bytes,1,opt,name=month,proto3" json:"month,omitempty"`
	Used  int32                  `protobuf:"varint,2,opt,name=used,proto3" json:"used,omitempty"`
	// 0 means unlimited
	Limit         int32 `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Remaining     int32 `protobuf:"varint,4,opt,name=remaining,proto3" json:"remaining,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUsageResponse) Reset() {
	*x = GetUsageResponse{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUsageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUsageResponse) ProtoMessage() {}

func (x *GetUsageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUsageResponse.ProtoReflect.Descriptor instead.
func (*GetUsageResponse) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{7}
}

func (x *GetUsageResponse) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *GetUsageResponse) GetUsed() int32 {
	if x != nil {
		return x.Used
	}
	return 0
}

func (x *GetUsageResponse) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *GetUsageResponse) GetRemaining() int32 {
	if x != nil {
		return x.Remaining
	}
	return 0
}

type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Plan          string                 `protobuf:"bytes,4,opt,name=plan,proto3" json:"plan,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{8}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *User) GetPlan() string {
	if x != nil {
		return x.Plan
	}
	return ""
}

func (x *User) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *User) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	MimeType      string                 `protobuf:"bytes,3,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{9}
}

func (x *UploadDocumentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// one of: completed, duplicate, quota_exceeded, rejected, failed
	Status         string    `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Document       *Document `protobuf:"bytes,2,opt,name=document,proto3" json:"document,omitempty"`
	MonthlyUsed    int32     `protobuf:"varint,3,opt,name=monthly_used,json=monthlyUsed,proto3" json:"monthly_used,omitempty"`
	MonthlyLimit   int32     `protobuf:"varint,4,opt,name=monthly_limit,json=monthlyLimit,proto3" json:"monthly_limit,omitempty"`
	FailureCode    string    `protobuf:"bytes,5,opt,name=failure_code,json=failureCode,proto3" json:"failure_code,omitempty"`
	FailureMessage string    `protobuf:"bytes,6,opt,name=failure_message,json=failureMessage,proto3" json:"failure_message,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{10}
}

func (x *UploadDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *UploadDocumentResponse) GetMonthlyUsed() int32 {
	if x != nil {
		return x.MonthlyUsed
	}
	return 0
}

func (x *UploadDocumentResponse) GetMonthlyLimit() int32 {
	if x != nil {
		return x.MonthlyLimit
	}
	return 0
}

func (x *UploadDocumentResponse) GetFailureCode() string {
	if x != nil {
		return x.FailureCode
	}
	return ""
}

func (x *UploadDocumentResponse) GetFailureMessage() string {
	if x != nil {
		return x.FailureMessage
	}
	return ""
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{11}
}

func (x *ListDocumentsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListDocumentsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{12}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

func (x *ListDocumentsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{13}
}

func (x *GetDocumentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{14}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{15}
}

func (x *DeleteDocumentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *DeleteDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{16}
}

func (x *DeleteDocumentResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type Document struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId         string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	Filename       string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	Payload        *ExtractionPayload     `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"`
	Confidence     float32                `protobuf:"fixed32,6,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Anomalies      []string               `protobuf:"bytes,7,rep,name=anomalies,proto3" json:"anomalies,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{17}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Document) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetPayload() *ExtractionPayload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *Document) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Document) GetAnomalies() []string {
	if x != nil {
		return x.Anomalies
	}
	return nil
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

// All amounts are canonical decimal strings ("6013.10"); empty string means
// the field was absent or could not be read from the document.
type ExtractionPayload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VendorName    string                 `protobuf:"bytes,1,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	InvoiceNumber string                 `protobuf:"bytes,2,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	InvoiceDate   string                 `protobuf:"bytes,3,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"`
	DueDate       string                 `protobuf:"bytes,4,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	TotalAmount   string                 `protobuf:"bytes,5,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	VatAmount     string                 `protobuf:"bytes,6,opt,name=vat_amount,json=vatAmount,proto3" json:"vat_amount,omitempty"`
	VatPercentage string                 `protobuf:"bytes,7,opt,name=vat_percentage,json=vatPercentage,proto3" json:"vat_percentage,omitempty"`
	Currency      string                 `protobuf:"bytes,8,opt,name=currency,proto3" json:"currency,omitempty"`
	Iban          string                 `protobuf:"bytes,9,opt,name=iban,proto3" json:"iban,omitempty"`
	LineItems     []*LineItem            `protobuf:"bytes,10,rep,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"`
	Confidence    float32                `protobuf:"fixed32,11,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractionPayload) Reset() {
	*x = ExtractionPayload{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionPayload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionPayload) ProtoMessage() {}

func (x *ExtractionPayload) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionPayload.ProtoReflect.Descriptor instead.
func (*ExtractionPayload) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{18}
}

func (x *ExtractionPayload) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *ExtractionPayload) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *ExtractionPayload) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *ExtractionPayload) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *ExtractionPayload) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *ExtractionPayload) GetVatAmount() string {
	if x != nil {
		return x.VatAmount
	}
	return ""
}

func (x *ExtractionPayload) GetVatPercentage() string {
	if x != nil {
		return x.VatPercentage
	}
	return ""
}

func (x *ExtractionPayload) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *ExtractionPayload) GetIban() string {
	if x != nil {
		return x.Iban
	}
	return ""
}

func (x *ExtractionPayload) GetLineItems() []*LineItem {
	if x != nil {
		return x.LineItems
	}
	return nil
}

func (x *ExtractionPayload) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      string                 `protobuf:"bytes,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     string                 `protobuf:"bytes,3,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	Total         string                 `protobuf:"bytes,4,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{19}
}

func (x *LineItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *LineItem) GetQuantity() string {
	if x != nil {
		return x.Quantity
	}
	return ""
}

func (x *LineItem) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *LineItem) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

type ExportDocumentsRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	UserId string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// one of: csv, json, xlsx
	Format        string `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{20}
}

func (x *ExportDocumentsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExportDocumentsRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Data          []byte                 `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_docstream_v1_docstream_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docstream_v1_docstream_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docstream_v1_docstream_proto_rawDescGZIP(), []int{21}
}

func (x *ExportDocumentsResponse) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *ExportDocumentsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportDocumentsResponse) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

var File_docstream_v1_docstream_proto protoreflect.FileDescriptor

const file_docstream_v1_docstream_proto_rawDesc = "" +
	"\n" +
	"\x1cdocstream/v1/docstream.proto\x12\fdocstream.v1\"=\n" +
	"\x11CreateUserRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"V\n" +
	"\x12CreateUserResponse\x12&\n" +
	"\x04user\x18\x01 \x01(\v2\x12.docstream.v1.UserR\x04user\x12\x18\n" +
	"\acreated\x18\x02 \x01(\bR\acreated\")\n" +
	"\x0eGetUserRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"9\n" +
	"\x0fGetUserResponse\x12&\n" +
	"\x04user\x18\x01 \x01(\v2\x12.docstream.v1.UserR\x04user\"=\n" +
	"\x0eSetPlanRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x12\n" +
	"\x04plan\x18\x02 \x01(\tR\x04plan\"9\n" +
	"\x0fSetPlanResponse\x12&\n" +
	"\x04user\x18\x01 \x01(\v2\x12.docstream.v1.UserR\x04user\"@\n" +
	"\x0fGetUsageRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05month\x18\x02 \x01(\tR\x05month\"p\n" +
	"\x10GetUsageResponse\x12\x14\n" +
	"\x05month\x18\x01 \x01(\tR\x05month\x12\x12\n" +
	"\x04used\x18\x02 \x01(\x05R\x04used\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\x12\x1c\n" +
	"\tremaining\x18\x04 \x01(\x05R\tremaining\"\x92\x01\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x12\n" +
	"\x04plan\x18\x04 \x01(\tR\x04plan\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\x83\x01\n" +
	"\x15UploadDocumentRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1b\n" +
	"\tmime_type\x18\x03 \x01(\tR\bmimeType\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\"\xf8\x01\n" +
	"\x16UploadDocumentResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x122\n" +
	"\bdocument\x18\x02 \x01(\v2\x16.docstream.v1.DocumentR\bdocument\x12!\n" +
	"\fmonthly_used\x18\x03 \x01(\x05R\vmonthlyUsed\x12#\n" +
	"\rmonthly_limit\x18\x04 \x01(\x05R\fmonthlyLimit\x12!\n" +
	"\ffailure_code\x18\x05 \x01(\tR\vfailureCode\x12'\n" +
	"\x0ffailure_message\x18\x06 \x01(\tR\x0efailureMessage\"]\n" +
	"\x14ListDocumentsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"c\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.docstream.v1.DocumentR\tdocuments\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"N\n" +
	"\x12GetDocumentRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\"I\n" +
	"\x13GetDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.docstream.v1.DocumentR\bdocument\"Q\n" +
	"\x15DeleteDocumentRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\"2\n" +
	"\x16DeleteDocumentResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"\xb0\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\x129\n" +
	"\apayload\x18\x05 \x01(\v2\x1f.docstream.v1.ExtractionPayloadR\apayload\x12\x1e\n" +
	"\n" +
	"confidence\x18\x06 \x01(\x02R\n" +
	"confidence\x12\x1c\n" +
	"\tanomalies\x18\a \x03(\tR\tanomalies\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"\x89\x03\n" +
	"\x11ExtractionPayload\x12\x1f\n" +
	"\vvendor_name\x18\x01 \x01(\tR\n" +
	"vendorName\x12%\n" +
	"\x0einvoice_number\x18\x02 \x01(\tR\rinvoiceNumber\x12!\n" +
	"\finvoice_date\x18\x03 \x01(\tR\vinvoiceDate\x12\x19\n" +
	"\bdue_date\x18\x04 \x01(\tR\adueDate\x12!\n" +
	"\ftotal_amount\x18\x05 \x01(\tR\vtotalAmount\x12\x1d\n" +
	"\n" +
	"vat_amount\x18\x06 \x01(\tR\tvatAmount\x12%\n" +
	"\x0evat_percentage\x18\a \x01(\tR\rvatPercentage\x12\x1a\n" +
	"\bcurrency\x18\b \x01(\tR\bcurrency\x12\x12\n" +
	"\x04iban\x18\t \x01(\tR\x04iban\x125\n" +
	"\n" +
	"line_items\x18\n" +
	" \x03(\v2\x16.docstream.v1.LineItemR\tlineItems\x12\x1e\n" +
	"\n" +
	"confidence\x18\v \x01(\x02R\n" +
	"confidence\"}\n" +
	"\bLineItem\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\tR\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\tR\tunitPrice\x12\x14\n" +
	"\x05total\x18\x04 \x01(\tR\x05total\"I\n" +
	"\x16ExportDocumentsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\"l\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04data\x18\x01 \x01(\fR\x04data\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType2\xba\x02\n" +
	"\fUsersService\x12O\n" +
	"\n" +
	"CreateUser\x12\x1f.docstream.v1.CreateUserRequest\x1a .docstream.v1.CreateUserResponse\x12F\n" +
	"\aGetUser\x12\x1c.docstream.v1.GetUserRequest\x1a\x1d.docstream.v1.GetUserResponse\x12F\n" +
	"\aSetPlan\x12\x1c.docstream.v1.SetPlanRequest\x1a\x1d.docstream.v1.SetPlanResponse\x12I\n" +
	"\bGetUsage\x12\x1d.docstream.v1.GetUsageRequest\x1a\x1e.docstream.v1.GetUsageResponse2\xfa\x02\n" +
	"\x10DocumentsService\x12[\n" +
	"\x0eUploadDocument\x12#.docstream.v1.UploadDocumentRequest\x1a$.docstream.v1.UploadDocumentResponse\x12X\n" +
	"\rListDocuments\x12\".docstream.v1.ListDocumentsRequest\x1a#.docstream.v1.ListDocumentsResponse\x12R\n" +
	"\vGetDocument\x12 .docstream.v1.GetDocumentRequest\x1a!.docstream.v1.GetDocumentResponse\x12[\n" +
	"\x0eDeleteDocument\x12#.docstream.v1.DeleteDocumentRequest\x1a$.docstream.v1.DeleteDocumentResponse2o\n" +
	"\rExportService\x12^\n" +
	"\x0fExportDocuments\x12$.docstream.v1.ExportDocumentsRequest\x1a%.docstream.v1.ExportDocumentsResponseBCZAgithub.com/docstream/docstream/gen/proto/docstream/v1;docstreamv1b\x06proto3"

var (
	file_docstream_v1_docstream_proto_rawDescOnce sync.Once
	file_docstream_v1_docstream_proto_rawDescData []byte
)

func file_docstream_v1_docstream_proto_rawDescGZIP() []byte {
	file_docstream_v1_docstream_proto_rawDescOnce.Do(func() {
		file_docstream_v1_docstream_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docstream_v1_docstream_proto_rawDesc), len(file_docstream_v1_docstream_proto_rawDesc)))
	})
	return file_docstream_v1_docstream_proto_rawDescData
}

var file_docstream_v1_docstream_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_docstream_v1_docstream_proto_goTypes = []any{
	(*CreateUserRequest)(nil),       // 0: docstream.v1.CreateUserRequest
	(*CreateUserResponse)(nil),      // 1: docstream.v1.CreateUserResponse
	(*GetUserRequest)(nil),          // 2: docstream.v1.GetUserRequest
	(*GetUserResponse)(nil),         // 3: docstream.v1.GetUserResponse
	(*SetPlanRequest)(nil),          // 4: docstream.v1.SetPlanRequest
	(*SetPlanResponse)(nil),         // 5: docstream.v1.SetPlanResponse
	(*GetUsageRequest)(nil),         // 6: docstream.v1.GetUsageRequest
	(*GetUsageResponse)(nil),        // 7: docstream.v1.GetUsageResponse
	(*User)(nil),                    // 8: docstream.v1.User
	(*UploadDocumentRequest)(nil),   // 9: docstream.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),  // 10: docstream.v1.UploadDocumentResponse
	(*ListDocumentsRequest)(nil),    // 11: docstream.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),   // 12: docstream.v1.ListDocumentsResponse
	(*GetDocumentRequest)(nil),      // 13: docstream.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),     // 14: docstream.v1.GetDocumentResponse
	(*DeleteDocumentRequest)(nil),   // 15: docstream.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),  // 16: docstream.v1.DeleteDocumentResponse
	(*Document)(nil),                // 17: docstream.v1.Document
	(*ExtractionPayload)(nil),       // 18: docstream.v1.ExtractionPayload
	(*LineItem)(nil),                // 19: docstream.v1.LineItem
	(*ExportDocumentsRequest)(nil),  // 20: docstream.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil), // 21: docstream.v1.ExportDocumentsResponse
}
var file_docstream_v1_docstream_proto_depIdxs = []int32{
	8,  // 0: docstream.v1.CreateUserResponse.user:type_name -> docstream.v1.User
	8,  // 1: docstream.v1.GetUserResponse.user:type_name -> docstream.v1.User
	8,  // 2: docstream.v1.SetPlanResponse.user:type_name -> docstream.v1.User
	17, // 3: docstream.v1.UploadDocumentResponse.document:type_name -> docstream.v1.Document
	17, // 4: docstream.v1.ListDocumentsResponse.documents:type_name -> docstream.v1.Document
	17, // 5: docstream.v1.GetDocumentResponse.document:type_name -> docstream.v1.Document
	18, // 6: docstream.v1.Document.payload:type_name -> docstream.v1.ExtractionPayload
	19, // 7: docstream.v1.ExtractionPayload.line_items:type_name -> docstream.v1.LineItem
	0,  // 8: docstream.v1.UsersService.CreateUser:input_type -> docstream.v1.CreateUserRequest
	2,  // 9: docstream.v1.UsersService.GetUser:input_type -> docstream.v1.GetUserRequest
	4,  // 10: docstream.v1.UsersService.SetPlan:input_type -> docstream.v1.SetPlanRequest
	6,  // 11: docstream.v1.UsersService.GetUsage:input_type -> docstream.v1.GetUsageRequest
	9,  // 12: docstream.v1.DocumentsService.UploadDocument:input_type -> docstream.v1.UploadDocumentRequest
	11, // 13: docstream.v1.DocumentsService.ListDocuments:input_type -> docstream.v1.ListDocumentsRequest
	13, // 14: docstream.v1.DocumentsService.GetDocument:input_type -> docstream.v1.GetDocumentRequest
	15, // 15: docstream.v1.DocumentsService.DeleteDocument:input_type -> docstream.v1.DeleteDocumentRequest
	20, // 16: docstream.v1.ExportService.ExportDocuments:input_type -> docstream.v1.ExportDocumentsRequest
	1,  // 17: docstream.v1.UsersService.CreateUser:output_type -> docstream.v1.CreateUserResponse
	3,  // 18: docstream.v1.UsersService.GetUser:output_type -> docstream.v1.GetUserResponse
	5,  // 19: docstream.v1.UsersService.SetPlan:output_type -> docstream.v1.SetPlanResponse
	7,  // 20: docstream.v1.UsersService.GetUsage:output_type -> docstream.v1.GetUsageResponse
	10, // 21: docstream.v1.DocumentsService.UploadDocument:output_type -> docstream.v1.UploadDocumentResponse
	12, // 22: docstream.v1.DocumentsService.ListDocuments:output_type -> docstream.v1.ListDocumentsResponse
	14, // 23: docstream.v1.DocumentsService.GetDocument:output_type -> docstream.v1.GetDocumentResponse
	16, // 24: docstream.v1.DocumentsService.DeleteDocument:output_type -> docstream.v1.DeleteDocumentResponse
	21, // 25: docstream.v1.ExportService.ExportDocuments:output_type -> docstream.v1.ExportDocumentsResponse
	17, // [17:26] is the sub-list for method output_type
	8,  // [8:17] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_docstream_v1_docstream_proto_init() }
func file_docstream_v1_docstream_proto_init() {
	if File_docstream_v1_docstream_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docstream_v1_docstream_proto_rawDesc), len(file_docstream_v1_docstream_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_docstream_v1_docstream_proto_goTypes,
		DependencyIndexes: file_docstream_v1_docstream_proto_depIdxs,
		MessageInfos:      file_docstream_v1_docstream_proto_msgTypes,
	}.Build()
	File_docstream_v1_docstream_proto = out.File
	file_docstream_v1_docstream_proto_goTypes = nil
	file_docstream_v1_docstream_proto_depIdxs = nil
}

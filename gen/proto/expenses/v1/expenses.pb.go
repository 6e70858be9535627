// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: expenses/v1/expenses.proto

package expensesv1

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

type Task struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Kind          string                 `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	PayloadJson   string                 `protobuf:"bytes,5,opt,name=payload_json,json=payloadJson,proto3" json:"payload_json,omitempty"`
	ResultJson    string                 `protobuf:"bytes,6,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Task) Reset() {
	*x = Task{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Task) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Task) ProtoMessage() {}

func (x *Task) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Task.ProtoReflect.Descriptor instead.
func (*Task) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{0}
}

func (x *Task) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Task) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Task) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *Task) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Task) GetPayloadJson() string {
	if x != nil {
		return x.PayloadJson
	}
	return ""
}

func (x *Task) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

func (x *Task) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Task) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Task) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ProcessNextTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessNextTaskRequest) Reset() {
	*x = ProcessNextTaskRequest{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessNextTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessNextTaskRequest) ProtoMessage() {}

func (x *ProcessNextTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessNextTaskRequest.ProtoReflect.Descriptor instead.
func (*ProcessNextTaskRequest) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessNextTaskRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ProcessNextTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	NoTasks       bool                   `protobuf:"varint,1,opt,name=no_tasks,json=noTasks,proto3" json:"no_tasks,omitempty"`
	TaskId        string                 `protobuf:"bytes,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	TargetId      string                 `protobuf:"bytes,3,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	ExtractedJson string                 `protobuf:"bytes,4,opt,name=extracted_json,json=extractedJson,proto3" json:"extracted_json,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessNextTaskResponse) Reset() {
	*x = ProcessNextTaskResponse{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessNextTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessNextTaskResponse) ProtoMessage() {}

func (x *ProcessNextTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessNextTaskResponse.ProtoReflect.Descriptor instead.
func (*ProcessNextTaskResponse) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessNextTaskResponse) GetNoTasks() bool {
	if x != nil {
		return x.NoTasks
	}
	return false
}

func (x *ProcessNextTaskResponse) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *ProcessNextTaskResponse) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *ProcessNextTaskResponse) GetExtractedJson() string {
	if x != nil {
		return x.ExtractedJson
	}
	return ""
}

func (x *ProcessNextTaskResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ListTasksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksRequest) Reset() {
	*x = ListTasksRequest{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksRequest) ProtoMessage() {}

func (x *ListTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksRequest.ProtoReflect.Descriptor instead.
func (*ListTasksRequest) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{3}
}

func (x *ListTasksRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListTasksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tasks         []*Task                `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksResponse) Reset() {
	*x = ListTasksResponse{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksResponse) ProtoMessage() {}

func (x *ListTasksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksResponse.ProtoReflect.Descriptor instead.
func (*ListTasksResponse) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{4}
}

func (x *ListTasksResponse) GetTasks() []*Task {
	if x != nil {
		return x.Tasks
	}
	return nil
}

type GetTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TaskId        string                 `protobuf:"bytes,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTaskRequest) Reset() {
	*x = GetTaskRequest{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTaskRequest) ProtoMessage() {}

func (x *GetTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTaskRequest.ProtoReflect.Descriptor instead.
func (*GetTaskRequest) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{5}
}

func (x *GetTaskRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type GetTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTaskResponse) Reset() {
	*x = GetTaskResponse{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTaskResponse) ProtoMessage() {}

func (x *GetTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTaskResponse.ProtoReflect.Descriptor instead.
func (*GetTaskResponse) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{6}
}

func (x *GetTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type UploadReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TripId        string                 `protobuf:"bytes,2,opt,name=trip_id,json=tripId,proto3" json:"trip_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,4,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	Template      string                 `protobuf:"bytes,6,opt,name=template,proto3" json:"template,omitempty"` // general|travel, defaults to general
	Provider      string                 `protobuf:"bytes,7,opt,name=provider,proto3" json:"provider,omitempty"` // optional provider override
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReceiptRequest) Reset() {
	*x = UploadReceiptRequest{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReceiptRequest) ProtoMessage() {}

func (x *UploadReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReceiptRequest.ProtoReflect.Descriptor instead.
func (*UploadReceiptRequest) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{7}
}

func (x *UploadReceiptRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadReceiptRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *UploadReceiptRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadReceiptRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadReceiptRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadReceiptRequest) GetTemplate() string {
	if x != nil {
		return x.Template
	}
	return ""
}

func (x *UploadReceiptRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

type UploadReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExpenseId     string                 `protobuf:"bytes,1,opt,name=expense_id,json=expenseId,proto3" json:"expense_id,omitempty"`
	TaskId        string                 `protobuf:"bytes,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	ReceiptPath   string                 `protobuf:"bytes,3,opt,name=receipt_path,json=receiptPath,proto3" json:"receipt_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReceiptResponse) Reset() {
	*x = UploadReceiptResponse{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReceiptResponse) ProtoMessage() {}

func (x *UploadReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReceiptResponse.ProtoReflect.Descriptor instead.
func (*UploadReceiptResponse) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{8}
}

func (x *UploadReceiptResponse) GetExpenseId() string {
	if x != nil {
		return x.ExpenseId
	}
	return ""
}

func (x *UploadReceiptResponse) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *UploadReceiptResponse) GetReceiptPath() string {
	if x != nil {
		return x.ReceiptPath
	}
	return ""
}

type UploadOdometerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TripId        string                 `protobuf:"bytes,2,opt,name=trip_id,json=tripId,proto3" json:"trip_id,omitempty"`
	MileageLogId  string                 `protobuf:"bytes,3,opt,name=mileage_log_id,json=mileageLogId,proto3" json:"mileage_log_id,omitempty"` // optional; a new log is created when absent
	Field         string                 `protobuf:"bytes,4,opt,name=field,proto3" json:"field,omitempty"`                                     // start|end
	Filename      string                 `protobuf:"bytes,5,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,6,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,7,opt,name=content,proto3" json:"content,omitempty"`
	Provider      string                 `protobuf:"bytes,8,opt,name=provider,proto3" json:"provider,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadOdometerRequest) Reset() {
	*x = UploadOdometerRequest{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadOdometerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadOdometerRequest) ProtoMessage() {}

func (x *UploadOdometerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadOdometerRequest.ProtoReflect.Descriptor instead.
func (*UploadOdometerRequest) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{9}
}

func (x *UploadOdometerRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadOdometerRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *UploadOdometerRequest) GetMileageLogId() string {
	if x != nil {
		return x.MileageLogId
	}
	return ""
}

func (x *UploadOdometerRequest) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *UploadOdometerRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadOdometerRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadOdometerRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadOdometerRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

type UploadOdometerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MileageLogId  string                 `protobuf:"bytes,1,opt,name=mileage_log_id,json=mileageLogId,proto3" json:"mileage_log_id,omitempty"`
	TaskId        string                 `protobuf:"bytes,2,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	ImagePath     string                 `protobuf:"bytes,3,opt,name=image_path,json=imagePath,proto3" json:"image_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadOdometerResponse) Reset() {
	*x = UploadOdometerResponse{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadOdometerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadOdometerResponse) ProtoMessage() {}

func (x *UploadOdometerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadOdometerResponse.ProtoReflect.Descriptor instead.
func (*UploadOdometerResponse) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{10}
}

func (x *UploadOdometerResponse) GetMileageLogId() string {
	if x != nil {
		return x.MileageLogId
	}
	return ""
}

func (x *UploadOdometerResponse) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *UploadOdometerResponse) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

type ExportExpensesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExpensesRequest) Reset() {
	*x = ExportExpensesRequest{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExpensesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExpensesRequest) ProtoMessage() {}

func (x *ExportExpensesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExpensesRequest.ProtoReflect.Descriptor instead.
func (*ExportExpensesRequest) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{11}
}

func (x *ExportExpensesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExportExpensesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportExpensesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportExpensesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExpensesResponse) Reset() {
	*x = ExportExpensesResponse{}
	mi := &file_expenses_v1_expenses_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExpensesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExpensesResponse) ProtoMessage() {}

func (x *ExportExpensesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expenses_v1_expenses_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExpensesResponse.ProtoReflect.Descriptor instead.
func (*ExportExpensesResponse) Descriptor() ([]byte, []int) {
	return file_expenses_v1_expenses_proto_rawDescGZIP(), []int{12}
}

func (x *ExportExpensesResponse) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

var File_expenses_v1_expenses_proto protoreflect.FileDescriptor

const file_expenses_v1_expenses_proto_rawDesc = "" +
	"\n" +
	"\x1aexpenses/v1/expenses.proto\x12\vexpenses.v1\"\x82\x02\n" +
	"\x04Task\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x12\n" +
	"\x04kind\x18\x03 \x01(\tR\x04kind\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12!\n" +
	"\fpayload_json\x18\x05 \x01(\tR\vpayloadJson\x12\x1f\n" +
	"\vresult_json\x18\x06 \x01(\tR\n" +
	"resultJson\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"1\n" +
	"\x16ProcessNextTaskRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"\xa7\x01\n" +
	"\x17ProcessNextTaskResponse\x12\x19\n" +
	"\bno_tasks\x18\x01 \x01(\bR\anoTasks\x12\x17\n" +
	"\atask_id\x18\x02 \x01(\tR\x06taskId\x12\x1b\n" +
	"\ttarget_id\x18\x03 \x01(\tR\btargetId\x12%\n" +
	"\x0eextracted_json\x18\x04 \x01(\tR\rextractedJson\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\"+\n" +
	"\x10ListTasksRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"<\n" +
	"\x11ListTasksResponse\x12'\n" +
	"\x05tasks\x18\x01 \x03(\v2\x11.expenses.v1.TaskR\x05tasks\"B\n" +
	"\x0eGetTaskRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x17\n" +
	"\atask_id\x18\x02 \x01(\tR\x06taskId\"8\n" +
	"\x0fGetTaskResponse\x12%\n" +
	"\x04task\x18\x01 \x01(\v2\x11.expenses.v1.TaskR\x04task\"\xd9\x01\n" +
	"\x14UploadReceiptRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x17\n" +
	"\atrip_id\x18\x02 \x01(\tR\x06tripId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x04 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\x05 \x01(\fR\acontent\x12\x1a\n" +
	"\btemplate\x18\x06 \x01(\tR\btemplate\x12\x1a\n" +
	"\bprovider\x18\a \x01(\tR\bprovider\"r\n" +
	"\x15UploadReceiptResponse\x12\x1d\n" +
	"\n" +
	"expense_id\x18\x01 \x01(\tR\texpenseId\x12\x17\n" +
	"\atask_id\x18\x02 \x01(\tR\x06taskId\x12!\n" +
	"\freceipt_path\x18\x03 \x01(\tR\vreceiptPath\"\xfa\x01\n" +
	"\x15UploadOdometerRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x17\n" +
	"\atrip_id\x18\x02 \x01(\tR\x06tripId\x12$\n" +
	"\x0emileage_log_id\x18\x03 \x01(\tR\fmileageLogId\x12\x14\n" +
	"\x05field\x18\x04 \x01(\tR\x05field\x12\x1a\n" +
	"\bfilename\x18\x05 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x06 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\a \x01(\fR\acontent\x12\x1a\n" +
	"\bprovider\x18\b \x01(\tR\bprovider\"v\n" +
	"\x16UploadOdometerResponse\x12$\n" +
	"\x0emileage_log_id\x18\x01 \x01(\tR\fmileageLogId\x12\x17\n" +
	"\atask_id\x18\x02 \x01(\tR\x06taskId\x12\x1d\n" +
	"\n" +
	"image_path\x18\x03 \x01(\tR\timagePath\"f\n" +
	"\x15ExportExpensesRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"1\n" +
	"\x16ExportExpensesResponse\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId2\xfe\x01\n" +
	"\fTasksService\x12\\\n" +
	"\x0fProcessNextTask\x12#.expenses.v1.ProcessNextTaskRequest\x1a$.expenses.v1.ProcessNextTaskResponse\x12J\n" +
	"\tListTasks\x12\x1d.expenses.v1.ListTasksRequest\x1a\x1e.expenses.v1.ListTasksResponse\x12D\n" +
	"\aGetTask\x12\x1b.expenses.v1.GetTaskRequest\x1a\x1c.expenses.v1.GetTaskResponse2\x9e\x02\n" +
	"\x0eUploadsService\x12V\n" +
	"\rUploadReceipt\x12!.expenses.v1.UploadReceiptRequest\x1a\".expenses.v1.UploadReceiptResponse\x12Y\n" +
	"\x0eUploadOdometer\x12\".expenses.v1.UploadOdometerRequest\x1a#.expenses.v1.UploadOdometerResponse\x12Y\n" +
	"\x0eExportExpenses\x12\".expenses.v1.ExportExpensesRequest\x1a#.expenses.v1.ExportExpensesResponseBUZSgithub.com/oghenetejiriorukpegmail/expense-tracker/gen/proto/expenses/v1;expensesv1b\x06proto3"

var (
	file_expenses_v1_expenses_proto_rawDescOnce sync.Once
	file_expenses_v1_expenses_proto_rawDescData []byte
)

func file_expenses_v1_expenses_proto_rawDescGZIP() []byte {
	file_expenses_v1_expenses_proto_rawDescOnce.Do(func() {
		file_expenses_v1_expenses_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_expenses_v1_expenses_proto_rawDesc), len(file_expenses_v1_expenses_proto_rawDesc)))
	})
	return file_expenses_v1_expenses_proto_rawDescData
}

var file_expenses_v1_expenses_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_expenses_v1_expenses_proto_goTypes = []any{
	(*Task)(nil),                    // 0: expenses.v1.Task
	(*ProcessNextTaskRequest)(nil),  // 1: expenses.v1.ProcessNextTaskRequest
	(*ProcessNextTaskResponse)(nil), // 2: expenses.v1.ProcessNextTaskResponse
	(*ListTasksRequest)(nil),        // 3: expenses.v1.ListTasksRequest
	(*ListTasksResponse)(nil),       // 4: expenses.v1.ListTasksResponse
	(*GetTaskRequest)(nil),          // 5: expenses.v1.GetTaskRequest
	(*GetTaskResponse)(nil),         // 6: expenses.v1.GetTaskResponse
	(*UploadReceiptRequest)(nil),    // 7: expenses.v1.UploadReceiptRequest
	(*UploadReceiptResponse)(nil),   // 8: expenses.v1.UploadReceiptResponse
	(*UploadOdometerRequest)(nil),   // 9: expenses.v1.UploadOdometerRequest
	(*UploadOdometerResponse)(nil),  // 10: expenses.v1.UploadOdometerResponse
	(*ExportExpensesRequest)(nil),   // 11: expenses.v1.ExportExpensesRequest
	(*ExportExpensesResponse)(nil),  // 12: expenses.v1.ExportExpensesResponse
}
var file_expenses_v1_expenses_proto_depIdxs = []int32{
	0,  // 0: expenses.v1.ListTasksResponse.tasks:type_name -> expenses.v1.Task
	0,  // 1: expenses.v1.GetTaskResponse.task:type_name -> expenses.v1.Task
	1,  // 2: expenses.v1.TasksService.ProcessNextTask:input_type -> expenses.v1.ProcessNextTaskRequest
	3,  // 3: expenses.v1.TasksService.ListTasks:input_type -> expenses.v1.ListTasksRequest
	5,  // 4: expenses.v1.TasksService.GetTask:input_type -> expenses.v1.GetTaskRequest
	7,  // 5: expenses.v1.UploadsService.UploadReceipt:input_type -> expenses.v1.UploadReceiptRequest
	9,  // 6: expenses.v1.UploadsService.UploadOdometer:input_type -> expenses.v1.UploadOdometerRequest
	11, // 7: expenses.v1.UploadsService.ExportExpenses:input_type -> expenses.v1.ExportExpensesRequest
	2,  // 8: expenses.v1.TasksService.ProcessNextTask:output_type -> expenses.v1.ProcessNextTaskResponse
	4,  // 9: expenses.v1.TasksService.ListTasks:output_type -> expenses.v1.ListTasksResponse
	6,  // 10: expenses.v1.TasksService.GetTask:output_type -> expenses.v1.GetTaskResponse
	8,  // 11: expenses.v1.UploadsService.UploadReceipt:output_type -> expenses.v1.UploadReceiptResponse
	10, // 12: expenses.v1.UploadsService.UploadOdometer:output_type -> expenses.v1.UploadOdometerResponse
	12, // 13: expenses.v1.UploadsService.ExportExpenses:output_type -> expenses.v1.ExportExpensesResponse
	8,  // [8:14] is the sub-list for method output_type
	2,  // [2:8] is the sub-list for method input_type
	2,  // [2:2] is the sub-list for extension type_name
	2,  // [2:2] is the sub-list for extension extendee
	0,  // [0:2] is the sub-list for field type_name
}

func init() { file_expenses_v1_expenses_proto_init() }
func file_expenses_v1_expenses_proto_init() {
	if File_expenses_v1_expenses_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_expenses_v1_expenses_proto_rawDesc), len(file_expenses_v1_expenses_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_expenses_v1_expenses_proto_goTypes,
		DependencyIndexes: file_expenses_v1_expenses_proto_depIdxs,
		MessageInfos:      file_expenses_v1_expenses_proto_msgTypes,
	}.Build()
	File_expenses_v1_expenses_proto = out.File
	file_expenses_v1_expenses_proto_goTypes = nil
	file_expenses_v1_expenses_proto_depIdxs = nil
}

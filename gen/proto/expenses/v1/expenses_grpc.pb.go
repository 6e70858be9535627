// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: expenses/v1/expenses.proto

package expensesv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	TasksService_ProcessNextTask_FullMethodName = "/expenses.v1.TasksService/ProcessNextTask"
	TasksService_ListTasks_FullMethodName       = "/expenses.v1.TasksService/ListTasks"
	TasksService_GetTask_FullMethodName         = "/expenses.v1.TasksService/GetTask"
)

// TasksServiceClient is the client API for TasksService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// TasksService exposes the extraction task registry and the dispatcher
// trigger. Extraction failure is a reported outcome, never an RPC error.
type TasksServiceClient interface {
	ProcessNextTask(ctx context.Context, in *ProcessNextTaskRequest, opts ...grpc.CallOption) (*ProcessNextTaskResponse, error)
	ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error)
	GetTask(ctx context.Context, in *GetTaskRequest, opts ...grpc.CallOption) (*GetTaskResponse, error)
}

type tasksServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTasksServiceClient(cc grpc.ClientConnInterface) TasksServiceClient {
	return &tasksServiceClient{cc}
}

func (c *tasksServiceClient) ProcessNextTask(ctx context.Context, in *ProcessNextTaskRequest, opts ...grpc.CallOption) (*ProcessNextTaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessNextTaskResponse)
	err := c.cc.Invoke(ctx, TasksService_ProcessNextTask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tasksServiceClient) ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTasksResponse)
	err := c.cc.Invoke(ctx, TasksService_ListTasks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tasksServiceClient) GetTask(ctx context.Context, in *GetTaskRequest, opts ...grpc.CallOption) (*GetTaskResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTaskResponse)
	err := c.cc.Invoke(ctx, TasksService_GetTask_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TasksServiceServer is the server API for TasksService service.
// All implementations must embed UnimplementedTasksServiceServer
// for forward compatibility.
//
// TasksService exposes the extraction task registry and the dispatcher
// trigger. Extraction failure is a reported outcome, never an RPC error.
type TasksServiceServer interface {
	ProcessNextTask(context.Context, *ProcessNextTaskRequest) (*ProcessNextTaskResponse, error)
	ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error)
	GetTask(context.Context, *GetTaskRequest) (*GetTaskResponse, error)
	mustEmbedUnimplementedTasksServiceServer()
}

// UnimplementedTasksServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTasksServiceServer struct{}

func (UnimplementedTasksServiceServer) ProcessNextTask(context.Context, *ProcessNextTaskRequest) (*ProcessNextTaskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessNextTask not implemented")
}
func (UnimplementedTasksServiceServer) ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTasks not implemented")
}
func (UnimplementedTasksServiceServer) GetTask(context.Context, *GetTaskRequest) (*GetTaskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTask not implemented")
}
func (UnimplementedTasksServiceServer) mustEmbedUnimplementedTasksServiceServer() {}
func (UnimplementedTasksServiceServer) testEmbeddedByValue()                      {}

// UnsafeTasksServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TasksServiceServer will
// result in compilation errors.
type UnsafeTasksServiceServer interface {
	mustEmbedUnimplementedTasksServiceServer()
}

func RegisterTasksServiceServer(s grpc.ServiceRegistrar, srv TasksServiceServer) {
	// If the following call pancis, it indicates UnimplementedTasksServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TasksService_ServiceDesc, srv)
}

func _TasksService_ProcessNextTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessNextTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TasksServiceServer).ProcessNextTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TasksService_ProcessNextTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TasksServiceServer).ProcessNextTask(ctx, req.(*ProcessNextTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TasksService_ListTasks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TasksServiceServer).ListTasks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TasksService_ListTasks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TasksServiceServer).ListTasks(ctx, req.(*ListTasksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TasksService_GetTask_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TasksServiceServer).GetTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TasksService_GetTask_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TasksServiceServer).GetTask(ctx, req.(*GetTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TasksService_ServiceDesc is the grpc.ServiceDesc for TasksService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TasksService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "expenses.v1.TasksService",
	HandlerType: (*TasksServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessNextTask",
			Handler:    _TasksService_ProcessNextTask_Handler,
		},
		{
			MethodName: "ListTasks",
			Handler:    _TasksService_ListTasks_Handler,
		},
		{
			MethodName: "GetTask",
			Handler:    _TasksService_GetTask_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "expenses/v1/expenses.proto",
}

const (
	UploadsService_UploadReceipt_FullMethodName  = "/expenses.v1.UploadsService/UploadReceipt"
	UploadsService_UploadOdometer_FullMethodName = "/expenses.v1.UploadsService/UploadOdometer"
	UploadsService_ExportExpenses_FullMethodName = "/expenses.v1.UploadsService/ExportExpenses"
)

// UploadsServiceClient is the client API for UploadsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// UploadsService accepts receipt and odometer images and queues extraction.
type UploadsServiceClient interface {
	UploadReceipt(ctx context.Context, in *UploadReceiptRequest, opts ...grpc.CallOption) (*UploadReceiptResponse, error)
	UploadOdometer(ctx context.Context, in *UploadOdometerRequest, opts ...grpc.CallOption) (*UploadOdometerResponse, error)
	ExportExpenses(ctx context.Context, in *ExportExpensesRequest, opts ...grpc.CallOption) (*ExportExpensesResponse, error)
}

type uploadsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUploadsServiceClient(cc grpc.ClientConnInterface) UploadsServiceClient {
	return &uploadsServiceClient{cc}
}

func (c *uploadsServiceClient) UploadReceipt(ctx context.Context, in *UploadReceiptRequest, opts ...grpc.CallOption) (*UploadReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadReceiptResponse)
	err := c.cc.Invoke(ctx, UploadsService_UploadReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *uploadsServiceClient) UploadOdometer(ctx context.Context, in *UploadOdometerRequest, opts ...grpc.CallOption) (*UploadOdometerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadOdometerResponse)
	err := c.cc.Invoke(ctx, UploadsService_UploadOdometer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *uploadsServiceClient) ExportExpenses(ctx context.Context, in *ExportExpensesRequest, opts ...grpc.CallOption) (*ExportExpensesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportExpensesResponse)
	err := c.cc.Invoke(ctx, UploadsService_ExportExpenses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UploadsServiceServer is the server API for UploadsService service.
// All implementations must embed UnimplementedUploadsServiceServer
// for forward compatibility.
//
// UploadsService accepts receipt and odometer images and queues extraction.
type UploadsServiceServer interface {
	UploadReceipt(context.Context, *UploadReceiptRequest) (*UploadReceiptResponse, error)
	UploadOdometer(context.Context, *UploadOdometerRequest) (*UploadOdometerResponse, error)
	ExportExpenses(context.Context, *ExportExpensesRequest) (*ExportExpensesResponse, error)
	mustEmbedUnimplementedUploadsServiceServer()
}

// UnimplementedUploadsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedUploadsServiceServer struct{}

func (UnimplementedUploadsServiceServer) UploadReceipt(context.Context, *UploadReceiptRequest) (*UploadReceiptResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadReceipt not implemented")
}
func (UnimplementedUploadsServiceServer) UploadOdometer(context.Context, *UploadOdometerRequest) (*UploadOdometerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadOdometer not implemented")
}
func (UnimplementedUploadsServiceServer) ExportExpenses(context.Context, *ExportExpensesRequest) (*ExportExpensesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportExpenses not implemented")
}
func (UnimplementedUploadsServiceServer) mustEmbedUnimplementedUploadsServiceServer() {}
func (UnimplementedUploadsServiceServer) testEmbeddedByValue()                        {}

// UnsafeUploadsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to UploadsServiceServer will
// result in compilation errors.
type UnsafeUploadsServiceServer interface {
	mustEmbedUnimplementedUploadsServiceServer()
}

func RegisterUploadsServiceServer(s grpc.ServiceRegistrar, srv UploadsServiceServer) {
	// If the following call pancis, it indicates UnimplementedUploadsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&UploadsService_ServiceDesc, srv)
}

func _UploadsService_UploadReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadReceiptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UploadsServiceServer).UploadReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UploadsService_UploadReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UploadsServiceServer).UploadReceipt(ctx, req.(*UploadReceiptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UploadsService_UploadOdometer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadOdometerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UploadsServiceServer).UploadOdometer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UploadsService_UploadOdometer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UploadsServiceServer).UploadOdometer(ctx, req.(*UploadOdometerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UploadsService_ExportExpenses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportExpensesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UploadsServiceServer).ExportExpenses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UploadsService_ExportExpenses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UploadsServiceServer).ExportExpenses(ctx, req.(*ExportExpensesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UploadsService_ServiceDesc is the grpc.ServiceDesc for UploadsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var UploadsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "expenses.v1.UploadsService",
	HandlerType: (*UploadsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadReceipt",
			Handler:    _UploadsService_UploadReceipt_Handler,
		},
		{
			MethodName: "UploadOdometer",
			Handler:    _UploadsService_UploadOdometer_Handler,
		},
		{
			MethodName: "ExportExpenses",
			Handler:    _UploadsService_ExportExpenses_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "expenses/v1/expenses.proto",
}

package test

import (
	"github.com/golang/mock/gomock"
	"github.com/loilo-inc/deploycage/mocks/mock_awsiface"
)

// MockEcs returns a mock forwarding every call to srv. Expectations set in
// override are registered first, so they are matched before forwarding.
func MockEcs(ctrl *gomock.Controller, srv *EcsServer, override func(m *mock_awsiface.MockEcsClient)) *mock_awsiface.MockEcsClient {
	ecsMock := mock_awsiface.NewMockEcsClient(ctrl)
	if override != nil {
		override(ecsMock)
	}
	ecsMock.EXPECT().ListTaskDefinitions(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(srv.ListTaskDefinitions).AnyTimes()
	ecsMock.EXPECT().DescribeTaskDefinition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(srv.DescribeTaskDefinition).AnyTimes()
	ecsMock.EXPECT().RegisterTaskDefinition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(srv.RegisterTaskDefinition).AnyTimes()
	ecsMock.EXPECT().DeregisterTaskDefinition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(srv.DeregisterTaskDefinition).AnyTimes()
	ecsMock.EXPECT().DescribeServices(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(srv.DescribeServices).AnyTimes()
	ecsMock.EXPECT().UpdateService(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(srv.UpdateService).AnyTimes()
	ecsMock.EXPECT().RunTask(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(srv.RunTask).AnyTimes()
	ecsMock.EXPECT().DescribeTasks(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(srv.DescribeTasks).AnyTimes()
	return ecsMock
}

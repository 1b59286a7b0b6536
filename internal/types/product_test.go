package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductTypeIsServiceLike(t *testing.T) {
	testCases := []struct {
		productType ProductType
		serviceLike bool
	}{
		{ProductTypeService, true},
		{ProductTypeStorable, true},
		{ProductTypeConsumable, false},
		{ProductTypeCombo, false},
		{ProductType("unknown"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.productType.String(), func(t *testing.T) {
			assert.Equal(t, tc.serviceLike, tc.productType.IsServiceLike())
		})
	}
}

func TestServicePolicyMapping(t *testing.T) {
	testCases := []struct {
		policy      InvoicePolicy
		serviceType ServiceType
		expected    ServicePolicy
	}{
		{InvoicePolicyOrder, ServiceTypeManual, ServicePolicyOrderedPrepaid},
		{InvoicePolicyOrder, ServiceTypeTimesheet, ServicePolicyOrderedPrepaid},
		{InvoicePolicyOrder, ServiceTypeMilestones, ServicePolicyOrderedPrepaid},
		{InvoicePolicyDelivery, ServiceTypeTimesheet, ServicePolicyDeliveredTimesheet},
		{InvoicePolicyDelivery, ServiceTypeMilestones, ServicePolicyDeliveredMilestones},
		{InvoicePolicyDelivery, ServiceTypeManual, ServicePolicyDeliveredManual},
	}

	for _, tc := range testCases {
		got := ServicePolicyFromGeneral(tc.policy, tc.serviceType)
		assert.Equal(t, tc.expected, got)
	}
}

// Delivery-based policies must survive a round trip through the general
// settings; every ordered variant collapses onto the prepaid policy.
func TestServicePolicyRoundTrip(t *testing.T) {
	for _, policy := range []ServicePolicy{
		ServicePolicyOrderedPrepaid,
		ServicePolicyDeliveredTimesheet,
		ServicePolicyDeliveredMilestones,
		ServicePolicyDeliveredManual,
	} {
		invoicePolicy, serviceType := GeneralFromServicePolicy(policy)
		assert.Equal(t, policy, ServicePolicyFromGeneral(invoicePolicy, serviceType))
	}
}

func TestServiceTrackingCreatesProject(t *testing.T) {
	assert.False(t, ServiceTrackingNo.CreatesProject())
	assert.False(t, ServiceTrackingTaskGlobalProject.CreatesProject())
	assert.True(t, ServiceTrackingProjectOnly.CreatesProject())
	assert.True(t, ServiceTrackingTaskInProject.CreatesProject())
}

func TestProductTypeValidate(t *testing.T) {
	assert.NoError(t, ProductTypeService.Validate())
	assert.NoError(t, ProductTypeStorable.Validate())
	assert.Error(t, ProductType("digital").Validate())
}

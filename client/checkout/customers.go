package checkout

// CreateCustomer stores a customer via POST /customers.
func (c *Client) CreateCustomer(request *CreateCustomerRequest) (*CreateCustomerResponse, error) {
	var response CreateCustomerResponse
	err := c.post("/customers", request, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetCustomerDetails looks a customer up by identifier or email via
// GET /customers/{id_or_email}.
func (c *Client) GetCustomerDetails(idOrEmail string) (*GetCustomerDetailsResponse, error) {
	var response GetCustomerDetailsResponse
	err := c.get("/customers/"+idOrEmail, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// UpdateCustomer updates the set fields of a customer via
// PATCH /customers/{id}. The gateway answers with no body.
func (c *Client) UpdateCustomer(request *UpdateCustomerRequest) error {
	return c.patch("/customers/"+request.CustomerId, request)
}

// DeleteCustomer removes a customer via DELETE /customers/{id}.
func (c *Client) DeleteCustomer(customerId string) error {
	return c.delete("/customers/" + customerId)
}

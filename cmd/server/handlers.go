package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/vituglow/vituglow-server/internal/auth"
	"github.com/vituglow/vituglow-server/internal/config"
	"github.com/vituglow/vituglow-server/internal/httpx"
	"github.com/vituglow/vituglow-server/internal/order"
	"github.com/vituglow/vituglow-server/internal/product"
	"github.com/vituglow/vituglow-server/internal/user"
)

type deps struct {
	cfg      config.Config
	log      *zap.Logger
	tokens   *auth.Service
	users    user.Repository
	products product.Repository
	orders   order.Repository
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(d.log), httpx.Metrics())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	gated := auth.RequireToken(d.tokens)

	r.POST("/jwt", issueTokenHandler(d))
	r.POST("/users/:email", upsertUserHandler(d))
	r.PATCH("/users/:email", gated, requestStatusHandler(d))
	r.GET("/products", listProductsHandler(d))
	r.GET("/product/:id", getProductHandler(d))
	r.PATCH("/products/quantity/:id", gated, adjustQuantityHandler(d))
	r.POST("/products", createProductHandler(d))
	r.POST("/order", gated, createOrderHandler(d))
	r.GET("/customer-order/:email", gated, customerOrdersHandler(d))
	r.DELETE("/order/:id", gated, deleteOrderHandler(d))
	return r
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// internalError logs the real cause and returns a generic body so storage
// details never leak to the caller.
func internalError(c *gin.Context, log *zap.Logger, err error) {
	log.Error("request failed",
		zap.String("rid", c.GetString("rid")),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	fail(c, http.StatusInternalServerError, "Internal server error")
}

// issueTokenHandler signs a session credential for the posted email and
// sets it as the token cookie.
//
// @Summary      Issue a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body object{email=string} true "email to bind"
// @Success      200 {object} object{success=bool}
// @Failure      400 {object} product.HTTPError
// @Router       /jwt [post]
func issueTokenHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email string `json:"email"`
		}
		_ = c.ShouldBindJSON(&body)
		token, err := d.tokens.Issue(body.Email)
		if err != nil {
			if errors.Is(err, auth.ErrEmailRequired) {
				fail(c, http.StatusBadRequest, "Email is required")
				return
			}
			internalError(c, d.log, err)
			return
		}
		if d.cfg.Production() {
			c.SetSameSite(http.SameSiteNoneMode)
		} else {
			c.SetSameSite(http.SameSiteStrictMode)
		}
		c.SetCookie(auth.CookieName, token, int(auth.TokenTTL.Seconds()), "/", "", d.cfg.Production(), true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// upsertUserHandler registers the email on first contact; a repeat request
// returns the stored record unchanged.
//
// @Summary      Save or return a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email path string true "user email"
// @Success      200 {object} user.User
// @Router       /users/{email} [post]
func upsertUserHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var u user.User
		_ = c.ShouldBindJSON(&u) // profile body is optional
		saved, created, err := d.users.Upsert(c.Request.Context(), c.Param("email"), &u)
		if err != nil {
			internalError(c, d.log, err)
			return
		}
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, saved)
	}
}

// requestStatusHandler asks for a role upgrade. A missing user and a repeat
// request come back with the same message, matching the service's
// long-standing contract.
//
// @Summary      Request a status change
// @Tags         users
// @Produce      json
// @Param        email path string true "user email"
// @Success      200 {object} object{success=bool}
// @Failure      400 {object} product.HTTPError
// @Router       /users/{email} [patch]
func requestStatusHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := d.users.RequestStatusChange(c.Request.Context(), c.Param("email"))
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"success": true})
		case errors.Is(err, user.ErrAlreadyRequested), errors.Is(err, user.ErrNotFound):
			fail(c, http.StatusBadRequest, "You have already requested, wait for some time")
		default:
			internalError(c, d.log, err)
		}
	}
}

// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200 {array} product.Product
// @Router       /products [get]
func listProductsHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := d.products.List(c.Request.Context())
		if err != nil {
			internalError(c, d.log, err)
			return
		}
		if out == nil {
			out = []product.Product{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary      Fetch one product
// @Tags         products
// @Produce      json
// @Param        id path string true "product id"
// @Success      200 {object} product.Product
// @Failure      404 {object} product.HTTPError
// @Router       /product/{id} [get]
func getProductHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := d.products.GetByID(c.Request.Context(), c.Param("id"))
		switch {
		case err == nil:
			c.JSON(http.StatusOK, p)
		case errors.Is(err, product.ErrInvalidID):
			fail(c, http.StatusBadRequest, "invalid product id")
		case errors.Is(err, product.ErrNotFound):
			fail(c, http.StatusNotFound, "product not found")
		default:
			internalError(c, d.log, err)
		}
	}
}

// createProductHandler inserts the product as given. The only check beyond
// JSON well-formedness is that a supplied price parses as a decimal.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body body product.Product true "product document"
// @Success      201 {object} object{insertedId=string}
// @Failure      400 {object} product.HTTPError
// @Router       /products [post]
func createProductHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p product.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			fail(c, http.StatusBadRequest, "invalid product body")
			return
		}
		if p.Price != "" {
			if _, err := decimal.NewFromString(p.Price); err != nil {
				fail(c, http.StatusBadRequest, "invalid price")
				return
			}
		}
		id, err := d.products.Create(c.Request.Context(), &p)
		if err != nil {
			internalError(c, d.log, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"insertedId": id})
	}
}

// adjustQuantityHandler applies the stock delta. status "increase" adds,
// anything else subtracts. There is no floor: stock may go negative.
//
// @Summary      Adjust product stock
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id   path string                        true "product id"
// @Param        body body product.AdjustQuantityRequest true "delta and direction"
// @Success      200 {object} product.UpdateResult
// @Failure      400 {object} product.HTTPError
// @Failure      404 {object} product.HTTPError
// @Router       /products/quantity/{id} [patch]
func adjustQuantityHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body product.AdjustQuantityRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			fail(c, http.StatusBadRequest, "invalid quantity body")
			return
		}
		res, err := d.products.AdjustQuantity(c.Request.Context(), c.Param("id"), body.QuantityToUpdate, body.Status)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, res)
		case errors.Is(err, product.ErrInvalidID):
			fail(c, http.StatusBadRequest, "invalid product id")
		case errors.Is(err, product.ErrNotFound):
			fail(c, http.StatusNotFound, "product not found")
		default:
			internalError(c, d.log, err)
		}
	}
}

// createOrderHandler records the order only. Stock is adjusted by a separate
// call to the quantity endpoint; the two are deliberately not coupled here.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body body order.Order true "order document"
// @Success      201 {object} object{insertedId=string}
// @Router       /order [post]
func createOrderHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var o order.Order
		if err := c.ShouldBindJSON(&o); err != nil {
			fail(c, http.StatusBadRequest, "invalid order body")
			return
		}
		id, err := d.orders.Create(c.Request.Context(), &o)
		if err != nil {
			internalError(c, d.log, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"insertedId": id})
	}
}

// @Summary      List a customer's orders with product fields promoted
// @Tags         orders
// @Produce      json
// @Param        email path string true "customer email"
// @Success      200 {array} order.EnrichedOrder
// @Router       /customer-order/{email} [get]
func customerOrdersHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := d.orders.ListByCustomer(c.Request.Context(), c.Param("email"))
		if err != nil {
			internalError(c, d.log, err)
			return
		}
		if out == nil {
			out = []order.EnrichedOrder{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary      Cancel an order
// @Tags         orders
// @Produce      json
// @Param        id path string true "order id"
// @Success      200 {object} object{deletedCount=int}
// @Failure      404 {object} product.HTTPError
// @Failure      409 {object} product.HTTPError
// @Router       /order/{id} [delete]
func deleteOrderHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := d.orders.Delete(c.Request.Context(), c.Param("id"))
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
		case errors.Is(err, order.ErrInvalidID):
			fail(c, http.StatusBadRequest, "invalid order id")
		case errors.Is(err, order.ErrNotFound):
			fail(c, http.StatusNotFound, "order not found")
		case errors.Is(err, order.ErrDelivered):
			fail(c, http.StatusConflict, "cannot cancel once the product is delivered")
		default:
			internalError(c, d.log, err)
		}
	}
}
